// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"

	"nexuscommerce/internal/database"
	"nexuscommerce/internal/models"
)

// ErrCategoryInUse is returned when deleting a category that at least one
// product still references. The message is shown verbatim in the admin UI.
var ErrCategoryInUse = errors.New("category cannot be deleted: it is assigned to one or more products")

// CategoryStore manages the categories collection.
type CategoryStore struct {
	db *database.DB
}

// NewCategoryStore returns a new CategoryStore over the given handle.
func NewCategoryStore(db *database.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func categoryID(c models.Category) string { return c.ID }

// List returns all categories in insertion order.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	return d.Categories, nil
}

// Save upserts a category: an existing id is replaced in place, a new id is
// appended.
func (s *CategoryStore) Save(ctx context.Context, c models.Category) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Categories = upsert(d.Categories, c, categoryID)
		return nil
	})
}

// Delete removes a category by id, guarding the one cross-collection
// invariant: a category referenced by any product's categoryId cannot be
// deleted. The guard and the delete run in the same critical section, so no
// product write can slip between check and removal.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		for _, p := range d.Products {
			if p.CategoryID == id {
				return ErrCategoryInUse
			}
		}
		d.Categories = remove(d.Categories, id, categoryID)
		return nil
	})
}
