// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File stores the document as a single JSON file on disk. Writes go through
// a temp file and rename so a crash mid-write never leaves a torn document.
type File struct {
	path string
}

// NewFile returns a file-backed Store at the given path, creating parent
// directories as needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("blob file mkdir: %w", err)
	}
	return &File{path: path}, nil
}

// Load reads the whole document. A missing file maps to ErrNotFound.
func (f *File) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("blob file read: %w", err)
	}
	return data, nil
}

// Save atomically replaces the document on disk.
func (f *File) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("blob file temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("blob file write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("blob file close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("blob file rename: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *File) Close() error { return nil }
