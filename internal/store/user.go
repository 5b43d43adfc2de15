// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"nexuscommerce/internal/database"
	"nexuscommerce/internal/models"
)

// UserStore manages the admin users collection.
type UserStore struct {
	db *database.DB
}

// NewUserStore returns a new UserStore over the given handle.
func NewUserStore(db *database.DB) *UserStore {
	return &UserStore{db: db}
}

func userID(u models.User) string { return u.ID }

// List returns all users in insertion order.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	return d.Users, nil
}

// Save upserts a user: an existing id is replaced in place, a new id is
// appended.
func (s *UserStore) Save(ctx context.Context, u models.User) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Users = upsert(d.Users, u, userID)
		return nil
	})
}

// Delete removes a user by id. An absent id is a no-op.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Users = remove(d.Users, id, userID)
		return nil
	})
}
