// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"nexuscommerce/internal/database"
	"nexuscommerce/internal/models"
)

// OrderStore manages the orders collection.
type OrderStore struct {
	db *database.DB
}

// NewOrderStore returns a new OrderStore over the given handle.
func NewOrderStore(db *database.DB) *OrderStore {
	return &OrderStore{db: db}
}

func orderID(o models.Order) string { return o.ID }

// List returns all orders in insertion order.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	return d.Orders, nil
}

// Save upserts an order. Used by the storefront checkout to record new
// purchases.
func (s *OrderStore) Save(ctx context.Context, o models.Order) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Orders = upsert(d.Orders, o, orderID)
		return nil
	})
}

// Update replaces an order only if its id already exists. Orders are edited
// from an already-loaded record, so an unmatched id is silently ignored
// rather than appended.
func (s *OrderStore) Update(ctx context.Context, o models.Order) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Orders = replace(d.Orders, o, orderID)
		return nil
	})
}

// Delete removes an order by id. An absent id is a no-op.
func (s *OrderStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Orders = remove(d.Orders, id, orderID)
		return nil
	})
}
