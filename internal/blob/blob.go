// Package blob provides the persistence primitive beneath the store: one
// opaque document held under a fixed key, always read and replaced as a
// whole. Backends exist for memory, local file, Valkey, and PostgreSQL.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no document has been saved yet.
// Callers treat it as "fresh store" and fall back to defaults.
var ErrNotFound = errors.New("blob: no document stored")

// Store persists a single document. Save replaces the whole document;
// there are no partial writes.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}
