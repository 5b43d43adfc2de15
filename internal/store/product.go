// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"nexuscommerce/internal/database"
	"nexuscommerce/internal/models"
)

// ProductStore manages the products collection.
type ProductStore struct {
	db *database.DB
}

// NewProductStore returns a new ProductStore over the given handle.
func NewProductStore(db *database.DB) *ProductStore {
	return &ProductStore{db: db}
}

func productID(p models.Product) string { return p.ID }

// List returns all products in insertion order.
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	return d.Products, nil
}

// FindByID returns the product with the given id, or nil if not found.
func (s *ProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i], nil
		}
	}
	return nil, nil
}

// Save upserts a product: an existing id is replaced in place, a new id is
// appended.
func (s *ProductStore) Save(ctx context.Context, p models.Product) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Products = upsert(d.Products, p, productID)
		return nil
	})
}

// Delete removes a product by id. An absent id is a no-op.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Products = remove(d.Products, id, productID)
		return nil
	})
}
