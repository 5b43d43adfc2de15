// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// postgres.go keeps the document in a single-row table. The schema is
// managed with embedded goose migrations so no external files are needed
// at runtime.
package blob

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

// Postgres is a Store backed by one row in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects to PostgreSQL with the given DSN, verifies the
// connection, and runs pending migrations for the document table.
func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("blob postgres open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("blob postgres ping: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("postgres store connected")
	return &Postgres{db: db}, nil
}

// migrate runs all pending goose migrations from the embedded SQL files.
func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Load reads the document row. An empty table maps to ErrNotFound.
func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT data FROM store_documents WHERE key = $1`, storeKey,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("blob postgres select: %w", err)
	}
	return data, nil
}

// Save upserts the document row, replacing the previous document wholesale.
func (p *Postgres) Save(ctx context.Context, data []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO store_documents (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		storeKey, data, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("blob postgres upsert: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
