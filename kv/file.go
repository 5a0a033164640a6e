package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists each key as one file in a directory, the closest
// single-machine analog of the browser storage the store originally
// ran on. Writes go through a temp file and rename so a crash never
// leaves a half-written blob.
type File struct {
	dir string
}

// NewFile creates the directory if needed and returns a file-backed store.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the blob file for key, reporting ok=false when absent.
func (f *File) Load(_ context.Context, key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return blob, true, nil
}

// Save atomically replaces the blob file for key.
func (f *File) Save(_ context.Context, key string, blob []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}
