package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LocalStore persists snacks created while offline.
type LocalStore interface {
	Load(ctx context.Context) ([]Snack, error)
	Save(ctx context.Context, snacks []Snack) error
}

// FileStore keeps the local snacks as a JSON array in a single file.
// A missing file reads as an empty list.
type FileStore struct {
	Path string

	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load(_ context.Context) ([]Snack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []Snack{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local snacks: %w", err)
	}

	var snacks []Snack
	if err := json.Unmarshal(data, &snacks); err != nil {
		return nil, fmt.Errorf("decode local snacks: %w", err)
	}
	return snacks, nil
}

// Save replaces the file contents through a temp file and rename.
func (s *FileStore) Save(_ context.Context, snacks []Snack) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snacks == nil {
		snacks = []Snack{}
	}
	data, err := json.MarshalIndent(snacks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local snacks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write local snacks: %w", err)
	}
	return os.Rename(tmp, s.Path)
}
