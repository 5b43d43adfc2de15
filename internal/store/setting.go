// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"nexuscommerce/internal/database"
	"nexuscommerce/internal/models"
)

// SettingStore manages the settings singleton. There is exactly one Settings
// record per store; it is never listed or deleted, only read and replaced
// wholesale.
type SettingStore struct {
	db *database.DB
}

// NewSettingStore returns a new SettingStore over the given handle.
func NewSettingStore(db *database.DB) *SettingStore {
	return &SettingStore{db: db}
}

// Get returns the current settings, defaulted if the store is fresh.
func (s *SettingStore) Get(ctx context.Context) (models.Settings, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return d.Settings, nil
}

// Update replaces the whole settings record. There is no field-level merge:
// callers read the current value, change fields, and submit the complete
// record.
func (s *SettingStore) Update(ctx context.Context, settings models.Settings) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Settings = settings
		return nil
	})
}
