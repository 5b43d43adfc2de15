// Package store provides the repository operations for all Nexus entities.
// Each store struct wraps the shared database handle and exposes typed
// List/Save/Delete methods; every mutation is a whole-document
// read-modify-write through database.DB.
package store

import "github.com/google/uuid"

// NewID returns a fresh identifier for a record created server-side.
// Random 128-bit UUIDs make collisions within a collection negligible, so
// inserts do not re-check uniqueness.
func NewID() string {
	return uuid.NewString()
}

// upsert replaces the element whose id matches item's, preserving its
// position in the collection, or appends item when no id matches.
func upsert[T any](items []T, item T, idOf func(T) string) []T {
	id := idOf(item)
	for i := range items {
		if idOf(items[i]) == id {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out
		}
	}
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// replace swaps in item only when its id already exists; a missing id
// leaves the collection untouched. Used where editing an absent record is
// a silent no-op rather than an insert.
func replace[T any](items []T, item T, idOf func(T) string) []T {
	id := idOf(item)
	for i := range items {
		if idOf(items[i]) == id {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out
		}
	}
	return items
}

// remove returns the collection without the element whose id matches.
// An absent id returns the collection unchanged.
func remove[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
