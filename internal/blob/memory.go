// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blob

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is the default backend for tests,
// giving each test an isolated store.
type Memory struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the stored document, or ErrNotFound before the
// first Save.
func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return nil, ErrNotFound
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Save replaces the stored document.
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}

// Close is a no-op for the memory backend.
func (m *Memory) Close() error { return nil }
