package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/applymate/applymate/internal/models"
	"github.com/applymate/applymate/internal/utils"
)

// FileStore keeps the snapshot as one JSON file on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Save(profile *models.ResumeProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode personal resume: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write personal resume: %w", err)
	}
	return nil
}

func (f *FileStore) Load() (*models.ResumeProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("read personal resume: %w", err)
	}

	var profile models.ResumeProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode personal resume: %w", err)
	}
	return &profile, nil
}
