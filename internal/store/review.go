// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"nexuscommerce/internal/database"
	"nexuscommerce/internal/models"
)

// ReviewStore manages the reviews collection.
type ReviewStore struct {
	db *database.DB
}

// NewReviewStore returns a new ReviewStore over the given handle.
func NewReviewStore(db *database.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func reviewID(r models.Review) string { return r.ID }

// List returns all reviews in insertion order.
func (s *ReviewStore) List(ctx context.Context) ([]models.Review, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	return d.Reviews, nil
}

// Save upserts a review: an existing id is replaced in place, a new id is
// appended.
func (s *ReviewStore) Save(ctx context.Context, r models.Review) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Reviews = upsert(d.Reviews, r, reviewID)
		return nil
	})
}

// Update replaces a review only if its id already exists; moderation edits
// (status, reply) always start from a loaded record, so an unmatched id is
// silently ignored.
func (s *ReviewStore) Update(ctx context.Context, r models.Review) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Reviews = replace(d.Reviews, r, reviewID)
		return nil
	})
}

// Delete removes a review by id. An absent id is a no-op.
func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Reviews = remove(d.Reviews, id, reviewID)
		return nil
	})
}
