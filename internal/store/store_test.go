// store_test.go provides the shared test fixture for all store tests. Every
// test gets its own in-memory blob, so tests are fully isolated and need no
// external services.
package store

import (
	"testing"

	"nexuscommerce/internal/blob"
	"nexuscommerce/internal/database"
)

// testDB returns a store handle over a fresh in-memory blob.
func testDB(t *testing.T) *database.DB {
	t.Helper()
	db := database.Open(blob.NewMemory())
	t.Cleanup(func() { db.Close() })
	return db
}

// TestNewIDUnique sanity-checks that generated ids differ.
func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate %q", id)
		}
		seen[id] = true
	}
}
