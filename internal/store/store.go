// Package store persists the app collection as a single human-readable JSON
// document. Loads are tolerant: a missing file yields an empty collection and
// a corrupted file yields a warning plus an empty collection, never a crash.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/casey/apptrack/internal/domain"
)

// Store reads and writes the apps document at a fixed path.
type Store struct {
	path string
	warn io.Writer
}

// New creates a store for the given data file path. Warnings about
// unreadable data are written to stderr.
func New(path string) *Store {
	return NewWithWarnings(path, os.Stderr)
}

// NewWithWarnings creates a store with a custom warning sink (useful for tests).
func NewWithWarnings(path string, warn io.Writer) *Store {
	return &Store{path: path, warn: warn}
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection. A missing file is not an error: the
// collection simply does not exist yet and no file is created. A file that
// fails to parse produces a warning and an empty collection so a stray edit
// to the data file never makes the tool unusable.
func (s *Store) Load() (*domain.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewCollection(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var col domain.Collection
	if err := json.Unmarshal(data, &col); err != nil {
		fmt.Fprintf(s.warn, "warning: %s is not valid JSON (%v); starting with an empty collection\n", s.path, err)
		return domain.NewCollection(), nil
	}

	apps := make([]*domain.App, 0, len(col.Apps))
	for _, a := range col.Apps {
		if a == nil {
			continue
		}
		if a.URLs == nil {
			a.URLs = map[domain.Environment]string{}
		}
		apps = append(apps, a)
	}
	if dropped := len(col.Apps) - len(apps); dropped > 0 {
		fmt.Fprintf(s.warn, "warning: %s contains %d invalid app entries; ignoring them\n", s.path, dropped)
	}
	col.Apps = apps
	return &col, nil
}

// Save serializes the full collection with two-space indentation and replaces
// the document atomically: the bytes land in a temp file first and are
// renamed over the target, so a reader never sees a partial write.
func (s *Store) Save(col *domain.Collection) error {
	if col.Apps == nil {
		col.Apps = []*domain.App{}
	}

	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	committed = true
	return nil
}
