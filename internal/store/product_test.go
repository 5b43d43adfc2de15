package store

import (
	"context"
	"testing"

	"nexuscommerce/internal/models"
)

// TestProductSaveAppendsAndReplaces verifies upsert semantics: a new id is
// appended, an existing id is replaced in place without moving.
func TestProductSaveAppendsAndReplaces(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t))

	a := models.Product{ID: "1", SKU: "A-1", Price: 10}
	b := models.Product{ID: "2", SKU: "B-1", Price: 20}
	for _, p := range []models.Product{a, b} {
		if err := products.Save(ctx, p); err != nil {
			t.Fatalf("Save(%s): %v", p.ID, err)
		}
	}

	// Replace id=1 with new content.
	c := models.Product{ID: "1", SKU: "C-1", Price: 15}
	if err := products.Save(ctx, c); err != nil {
		t.Fatalf("Save replacement: %v", err)
	}

	got, err := products.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d products, want 2", len(got))
	}
	if got[0].ID != "1" || got[0].SKU != "C-1" {
		t.Errorf("position 0 = %+v, want replaced product c at its original position", got[0])
	}
	if got[1].ID != "2" || got[1].SKU != "B-1" {
		t.Errorf("position 1 = %+v, want product b untouched", got[1])
	}
}

// TestProductSaveIdempotent verifies saving the same record twice yields
// the same collection as saving it once.
func TestProductSaveIdempotent(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t))

	p := models.Product{ID: "p1", SKU: "SKU-1", Price: 50, Stock: 3}
	if err := products.Save(ctx, p); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := products.Save(ctx, p); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := products.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List returned %d products after double save, want 1", len(got))
	}
	if got[0].SKU != "SKU-1" || got[0].Price != 50 || got[0].Stock != 3 {
		t.Errorf("List[0] = %+v, want the saved product", got[0])
	}
}

// TestProductDeleteAbsentIsNoOp verifies deleting a missing id leaves the
// collection unchanged.
func TestProductDeleteAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t))

	if err := products.Save(ctx, models.Product{ID: "p1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := products.Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete absent id: %v", err)
	}

	got, err := products.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("List = %+v, want unchanged collection", got)
	}
}

// TestProductFindByID verifies lookup by id and the nil result on a miss.
func TestProductFindByID(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t))

	want := models.Product{ID: "p1", SKU: "SKU-1"}
	if err := products.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := products.FindByID(ctx, "p1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil || got.SKU != "SKU-1" {
		t.Errorf("FindByID = %+v, want the saved product", got)
	}

	missing, err := products.FindByID(ctx, "nope")
	if err != nil {
		t.Fatalf("FindByID miss: %v", err)
	}
	if missing != nil {
		t.Errorf("FindByID on absent id = %+v, want nil", missing)
	}
}

// TestProductListInsertionOrder verifies collections preserve insertion
// order across saves and deletes.
func TestProductListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	products := NewProductStore(testDB(t))

	for _, id := range []string{"a", "b", "c", "d"} {
		if err := products.Save(ctx, models.Product{ID: id}); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}
	if err := products.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := products.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("List returned %d products, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}
