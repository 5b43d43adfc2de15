// Package database defines the store aggregate — every entity collection
// plus the settings singleton, serialized as one JSON document — and the DB
// handle that reads and replaces it through a blob backend. Each repository
// operation is a read-modify-write of the whole document; the handle's mutex
// makes that safe when handlers run concurrently.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"nexuscommerce/internal/blob"
	"nexuscommerce/internal/models"
)

// Default theme colors applied to a fresh store.
const (
	DefaultPrimaryColor   = "#4f46e5"
	DefaultSecondaryColor = "#0f172a"
)

// DefaultBusinessName is the business name applied to a fresh store.
const DefaultBusinessName = "Nexus Commerce"

// Database is the aggregate held under the blob key: all entity collections
// and the settings sub-record. Collections preserve insertion order.
type Database struct {
	Products   []models.Product  `json:"products"`
	Categories []models.Category `json:"categories"`
	Orders     []models.Order    `json:"orders"`
	Reviews    []models.Review   `json:"reviews"`
	Articles   []models.Article  `json:"articles"`
	Users      []models.User     `json:"users"`
	Settings   models.Settings   `json:"settings"`
}

// Defaults returns a structurally complete empty Database: empty collections
// and default settings with the default two-color theme.
func Defaults() Database {
	d := Database{Settings: defaultSettings()}
	d.normalize()
	return d
}

func defaultSettings() models.Settings {
	return models.Settings{
		SocialLinks:  map[string]string{},
		BusinessName: DefaultBusinessName,
		Theme: models.Theme{
			PrimaryColor:   DefaultPrimaryColor,
			SecondaryColor: DefaultSecondaryColor,
		},
	}
}

// normalize fills in anything a partial document left unset so collections
// always serialize as arrays and settings always exist.
func (d *Database) normalize() {
	if d.Products == nil {
		d.Products = []models.Product{}
	}
	if d.Categories == nil {
		d.Categories = []models.Category{}
	}
	if d.Orders == nil {
		d.Orders = []models.Order{}
	}
	if d.Reviews == nil {
		d.Reviews = []models.Review{}
	}
	if d.Articles == nil {
		d.Articles = []models.Article{}
	}
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Settings.SocialLinks == nil {
		d.Settings.SocialLinks = map[string]string{}
	}
	if d.Settings.BusinessName == "" && d.Settings.Theme.PrimaryColor == "" {
		d.Settings = defaultSettings()
	}
}

// DB is the handle every repository store goes through. It is constructed
// once at startup and injected, never held as package state.
type DB struct {
	mu   sync.Mutex
	blob blob.Store
}

// Open returns a DB handle over the given blob backend.
func Open(b blob.Store) *DB {
	return &DB{blob: b}
}

// Close releases the underlying backend.
func (db *DB) Close() error {
	return db.blob.Close()
}

// Exists reports whether a document has been persisted yet.
func (db *DB) Exists(ctx context.Context) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	_, err := db.blob.Load(ctx)
	if errors.Is(err, blob.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load returns the current Database. An absent document yields defaults
// without persisting them. A document that fails to decode also yields
// defaults (fail closed) rather than surfacing a parse error to callers.
func (db *DB) Load(ctx context.Context) (Database, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.load(ctx)
}

// load reads and decodes the document. Callers must hold db.mu.
func (db *DB) load(ctx context.Context) (Database, error) {
	raw, err := db.blob.Load(ctx)
	if errors.Is(err, blob.ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return Database{}, fmt.Errorf("load store: %w", err)
	}

	var d Database
	if err := json.Unmarshal(raw, &d); err != nil {
		slog.Warn("store document failed to decode, using defaults", "error", err)
		return Defaults(), nil
	}
	d.normalize()
	return d, nil
}

// Save serializes and persists the whole Database, replacing whatever was
// previously stored.
func (db *DB) Save(ctx context.Context, d Database) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.save(ctx, d)
}

// save encodes and writes the document. Callers must hold db.mu.
func (db *DB) save(ctx context.Context, d Database) error {
	d.normalize()
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := db.blob.Save(ctx, raw); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}

// Update runs fn over the current Database and persists the result. The
// whole read-modify-write executes as one critical section, so concurrent
// updates cannot lose each other's writes. Returning an error from fn
// aborts without persisting.
func (db *DB) Update(ctx context.Context, fn func(*Database) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	d, err := db.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&d); err != nil {
		return err
	}
	return db.save(ctx, d)
}
