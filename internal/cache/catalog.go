// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go provides a Valkey-backed cache for filtered catalog listings.
// The catalog client simulates a slow remote API, so repeated listings with
// the same filter signature are served from Valkey instead of waiting out
// the artificial latency again. Faults degrade to a miss, never an error.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// listingKeyPrefix is the Valkey key prefix for cached listings.
	listingKeyPrefix = "catalog:"

	// DefaultListingTTL is how long a filtered listing stays cached. The
	// dataset is fixed, so this only bounds memory, not staleness.
	DefaultListingTTL = 5 * time.Minute
)

// ListingCache stores serialized catalog responses keyed by filter signature.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a listing cache backed by the given Valkey client.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl == 0 {
		ttl = DefaultListingTTL
	}
	return &ListingCache{client: client, ttl: ttl}
}

// Get retrieves a cached listing for a filter signature. Returns false on miss.
func (lc *ListingCache) Get(ctx context.Context, signature string) ([]byte, bool) {
	val, err := lc.client.Get(ctx, listingKeyPrefix+signature).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("listing cache get error", "signature", signature, "error", err)
		return nil, false
	}
	slog.Debug("listing cache hit", "signature", signature)
	return val, true
}

// Set stores a serialized listing under its filter signature.
func (lc *ListingCache) Set(ctx context.Context, signature string, body []byte) {
	if err := lc.client.Set(ctx, listingKeyPrefix+signature, body, lc.ttl).Err(); err != nil {
		slog.Warn("listing cache set error", "signature", signature, "error", err)
	}
}
