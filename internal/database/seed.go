package database

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
)

// Seed initializes the store from a static JSON document shaped as the
// Database. It is a no-op if a document is already persisted. A missing or
// malformed seed file is swallowed with a warning — the store simply starts
// from defaults, matching how the admin UI tolerates a failed seed fetch.
func Seed(ctx context.Context, db *DB, path string) error {
	exists, err := db.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		slog.Info("store already initialized, skipping seed")
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("seed data unavailable, starting from defaults", "path", path, "error", err)
		return nil
	}

	var d Database
	if err := json.Unmarshal(raw, &d); err != nil {
		slog.Warn("seed data malformed, starting from defaults", "path", path, "error", err)
		return nil
	}

	if err := db.Save(ctx, d); err != nil {
		return err
	}

	slog.Info("store seeded",
		"path", path,
		"products", len(d.Products),
		"categories", len(d.Categories),
		"users", len(d.Users),
	)
	return nil
}
