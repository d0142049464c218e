package storage

import "github.com/applymate/applymate/internal/models"

// SnapshotStore persists the single named "personal resume" profile outside
// the session space. It is the only durable state in the system.
type SnapshotStore interface {
	Save(profile *models.ResumeProfile) error
	Load() (*models.ResumeProfile, error)
}
