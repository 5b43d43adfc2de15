// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// valkey.go stores the document under a fixed key in Valkey — the closest
// server-side analog of the browser local-storage slot this store replaces.
package blob

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// storeKey is the fixed Valkey key holding the serialized store.
const storeKey = "nexus:store"

// Valkey is a Store backed by a Valkey (Redis-compatible) server.
type Valkey struct {
	client *redis.Client
}

// NewValkey returns a Valkey-backed Store using the given client. The
// client's lifecycle is owned by the Store; Close closes it.
func NewValkey(client *redis.Client) *Valkey {
	return &Valkey{client: client}
}

// Load fetches the document from the fixed key.
func (v *Valkey) Load(ctx context.Context) ([]byte, error) {
	data, err := v.client.Get(ctx, storeKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("blob valkey get: %w", err)
	}
	return data, nil
}

// Save replaces the document under the fixed key. No TTL — the store is
// durable state, not a cache.
func (v *Valkey) Save(ctx context.Context, data []byte) error {
	if err := v.client.Set(ctx, storeKey, data, 0).Err(); err != nil {
		return fmt.Errorf("blob valkey set: %w", err)
	}
	return nil
}

// Client exposes the underlying connection so callers can share it, e.g.
// with the listing cache.
func (v *Valkey) Client() *redis.Client {
	return v.client
}

// Close closes the underlying client.
func (v *Valkey) Close() error {
	return v.client.Close()
}
