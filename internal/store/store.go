package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/utils"
)

// ErrSlotPending is returned when a producer run is requested for a slot that
// already has one in flight. At most one producer ever writes a slot cycle.
var ErrSlotPending = errors.New("slot already pending")

// Store owns every session record. Reads hand out deep copies, so in-flight
// background writes are never observable half-done.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func New() *Store {
	return &Store{sessions: make(map[string]*models.Session)}
}

func (s *Store) Create() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Resume:    models.Slot[models.ResumeProfile]{State: models.SlotAbsent},
		Job:       models.Slot[models.JobProfile]{State: models.SlotAbsent},
		Match:     models.Slot[models.MatchResult]{State: models.SlotAbsent},
	}
	s.sessions[sess.ID] = sess
	return sess.Clone()
}

// PutReadyResume creates a fresh session whose resume slot is already ready,
// used when restoring the personal resume snapshot.
func (s *Store) PutReadyResume(profile models.ResumeProfile) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	sess := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Resume: models.Slot[models.ResumeProfile]{
			State:     models.SlotReady,
			Value:     &profile,
			UpdatedAt: now,
		},
		Job:   models.Slot[models.JobProfile]{State: models.SlotAbsent},
		Match: models.Slot[models.MatchResult]{State: models.SlotAbsent},
	}
	s.sessions[sess.ID] = sess
	return sess.Clone()
}

func (s *Store) Get(id string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return models.Session{}, utils.ErrNotFound
	}
	return sess.Clone(), nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return utils.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// StartResume transitions the resume slot to pending. Absent, failed, and
// ready slots accept a new run; a pending slot rejects with ErrSlotPending.
func (s *Store) StartResume(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return utils.ErrNotFound
	}
	return start(&sess.Resume)
}

// FinishResume performs the single terminal transition for the running
// producer. A session deleted mid-flight is a silent no-op; the task's result
// is simply discarded.
func (s *Store) FinishResume(id string, profile *models.ResumeProfile, failure *models.Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		finish(&sess.Resume, profile, failure)
	}
}

func (s *Store) StartJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return utils.ErrNotFound
	}
	return start(&sess.Job)
}

func (s *Store) FinishJob(id string, profile *models.JobProfile, failure *models.Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		finish(&sess.Job, profile, failure)
	}
}

func (s *Store) StartMatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return utils.ErrNotFound
	}
	return start(&sess.Match)
}

func (s *Store) FinishMatch(id string, result *models.MatchResult, failure *models.Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		finish(&sess.Match, result, failure)
	}
}

// SetSuggestedQuestions stores the question set only when none is present yet
// and returns whichever set ended up stored, keeping derivation idempotent.
func (s *Store) SetSuggestedQuestions(id string, questions []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	if len(sess.SuggestedQuestions) == 0 {
		sess.SuggestedQuestions = append([]string(nil), questions...)
	}
	return append([]string(nil), sess.SuggestedQuestions...), nil
}

func (s *Store) AppendAnswer(id string, qa models.QuestionAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return utils.ErrNotFound
	}
	sess.History = append(sess.History, qa)
	return nil
}

func start[T any](slot *models.Slot[T]) error {
	if slot.State == models.SlotPending {
		return ErrSlotPending
	}
	slot.State = models.SlotPending
	slot.Value = nil
	slot.Failure = nil
	slot.UpdatedAt = time.Now().UTC()
	return nil
}

func finish[T any](slot *models.Slot[T], value *T, failure *models.Failure) {
	if slot.State != models.SlotPending {
		return
	}
	if failure != nil {
		slot.State = models.SlotFailed
		slot.Failure = failure
		slot.Value = nil
	} else {
		slot.State = models.SlotReady
		slot.Value = value
		slot.Failure = nil
	}
	slot.UpdatedAt = time.Now().UTC()
}
