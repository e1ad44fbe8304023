package draft

import (
	"context"
	"encoding/json"
	"event-composer-backend/logger"
	"event-composer-backend/model"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the Draft as one JSON document on disk, the service-side
// analogue of the browser's local storage key.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) *model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *FileStore) Save(ctx context.Context, patch model.DraftPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.load(ctx)
	apply(d, patch)

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("save: error marshalling draft: %w", err)
	}

	// Whole-file rename so a torn write can never leave a corrupt draft.
	tmp := s.path + ".tmp"
	if err := ioutil.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("save: error writing draft: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("save: error replacing draft: %w", err)
	}

	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear: error removing draft: %w", err)
	}

	return nil
}

func (s *FileStore) load(ctx context.Context) *model.Draft {
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf(ctx, "load: error reading draft from %s, starting empty: %v", filepath.Base(s.path), err)
		}
		return &model.Draft{}
	}

	var d model.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		logger.Warnf(ctx, "load: corrupt draft in %s, starting empty: %v", filepath.Base(s.path), err)
		return &model.Draft{}
	}

	return &d
}
