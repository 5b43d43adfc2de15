package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"nexuscommerce/internal/blob"
	"nexuscommerce/internal/models"
)

// writeSeedFile writes seed JSON to a temp file and returns its path.
func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mockData.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

// TestSeedFreshStore verifies the seed document is persisted verbatim into
// an empty store.
func TestSeedFreshStore(t *testing.T) {
	ctx := context.Background()
	db := Open(blob.NewMemory())

	path := writeSeedFile(t, `{
		"categories": [{"id": "c1", "name": {"en": "Shoes", "ar": "أحذية"}, "image": ""}],
		"settings": {"businessName": "Seeded Shop", "theme": {"primaryColor": "#111111", "secondaryColor": "#222222"}}
	}`)

	if err := Seed(ctx, db, path); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	d, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Categories) != 1 || d.Categories[0].ID != "c1" {
		t.Errorf("categories = %+v, want the seeded category", d.Categories)
	}
	if d.Settings.BusinessName != "Seeded Shop" {
		t.Errorf("business name = %q, want %q", d.Settings.BusinessName, "Seeded Shop")
	}
}

// TestSeedSkipsInitializedStore verifies seeding never overwrites an
// existing document.
func TestSeedSkipsInitializedStore(t *testing.T) {
	ctx := context.Background()
	db := Open(blob.NewMemory())

	existing := Defaults()
	existing.Users = []models.User{{ID: "u1", Name: "Dana"}}
	if err := db.Save(ctx, existing); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := writeSeedFile(t, `{"users": [{"id": "seeded"}]}`)
	if err := Seed(ctx, db, path); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	d, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Users) != 1 || d.Users[0].ID != "u1" {
		t.Errorf("users = %+v, want the pre-existing user untouched", d.Users)
	}
}

// TestSeedSwallowsMissingFile verifies a missing seed file is not an error
// and leaves the store uninitialized.
func TestSeedSwallowsMissingFile(t *testing.T) {
	ctx := context.Background()
	mem := blob.NewMemory()
	db := Open(mem)

	if err := Seed(ctx, db, filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Fatalf("Seed with missing file: %v", err)
	}
	exists, err := db.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("Seed persisted a document despite missing seed file")
	}
}

// TestSeedSwallowsMalformedFile verifies malformed seed JSON is skipped.
func TestSeedSwallowsMalformedFile(t *testing.T) {
	ctx := context.Background()
	db := Open(blob.NewMemory())

	path := writeSeedFile(t, `{"products": [`)
	if err := Seed(ctx, db, path); err != nil {
		t.Fatalf("Seed with malformed file: %v", err)
	}
	exists, err := db.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if exists {
		t.Error("Seed persisted a document despite malformed seed file")
	}
}
