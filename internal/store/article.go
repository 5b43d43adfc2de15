// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"nexuscommerce/internal/database"
	"nexuscommerce/internal/models"
)

// ArticleStore manages the articles collection.
type ArticleStore struct {
	db *database.DB
}

// NewArticleStore returns a new ArticleStore over the given handle.
func NewArticleStore(db *database.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func articleID(a models.Article) string { return a.ID }

// List returns all articles in insertion order.
func (s *ArticleStore) List(ctx context.Context) ([]models.Article, error) {
	d, err := s.db.Load(ctx)
	if err != nil {
		return nil, err
	}
	return d.Articles, nil
}

// Save upserts an article: an existing id is replaced in place, a new id is
// appended.
func (s *ArticleStore) Save(ctx context.Context, a models.Article) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Articles = upsert(d.Articles, a, articleID)
		return nil
	})
}

// Delete removes an article by id. An absent id is a no-op.
func (s *ArticleStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(ctx, func(d *database.Database) error {
		d.Articles = remove(d.Articles, id, articleID)
		return nil
	})
}
