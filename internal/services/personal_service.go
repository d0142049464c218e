package services

import (
	"errors"

	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/storage"
	"github.com/applymate/applymate/internal/store"
	"github.com/applymate/applymate/internal/utils"
)

// PersonalService saves one resume profile outside the session space and
// restores it into a fresh session with the resume slot already ready.
type PersonalService interface {
	Save(sessionID string) error
	Load() (models.Session, error)
}

type personalService struct {
	store     *store.Store
	snapshots storage.SnapshotStore
}

func NewPersonalService(st *store.Store, snapshots storage.SnapshotStore) PersonalService {
	return &personalService{store: st, snapshots: snapshots}
}

func (s *personalService) Save(sessionID string) error {
	const op = "PersonalService.Save"

	sess, err := s.store.Get(sessionID)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "session not found", err)
	}
	if !sess.Resume.Ready() {
		return utils.E(utils.CodeFailedPrecondition, op, "resume not processed yet", nil)
	}
	if err := s.snapshots.Save(sess.Resume.Value); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save personal resume", err)
	}
	return nil
}

func (s *personalService) Load() (models.Session, error) {
	const op = "PersonalService.Load"

	profile, err := s.snapshots.Load()
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return models.Session{}, utils.E(utils.CodeNotFound, op, "no personal resume saved", err)
		}
		return models.Session{}, utils.E(utils.CodeInternal, op, "failed to load personal resume", err)
	}
	return s.store.PutReadyResume(*profile), nil
}
