package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestMemoryLoadBeforeSave verifies a fresh memory store reports ErrNotFound.
func TestMemoryLoadBeforeSave(t *testing.T) {
	m := NewMemory()
	_, err := m.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store: got %v, want ErrNotFound", err)
	}
}

// TestMemoryRoundTrip verifies Save then Load returns the same bytes and
// that callers cannot mutate the stored document through the returned slice.
func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	doc := []byte(`{"products":[]}`)
	if err := m.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("Load = %q, want %q", got, doc)
	}

	// Mutating the returned slice must not change the stored document.
	got[0] = 'X'
	again, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load after mutation: %v", err)
	}
	if string(again) != string(doc) {
		t.Errorf("stored document changed through returned slice: %q", again)
	}
}

// TestMemorySaveReplaces verifies each Save replaces the whole document.
func TestMemorySaveReplaces(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Save(ctx, []byte("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := m.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load = %q, want %q", got, "second")
	}
}

// TestFileLoadMissing verifies a missing file maps to ErrNotFound.
func TestFileLoadMissing(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if _, err := f.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on missing file: got %v, want ErrNotFound", err)
	}
}

// TestFileRoundTrip verifies the file backend persists across handles.
func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "store.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	doc := []byte(`{"categories":[{"id":"c1"}]}`)
	if err := f.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A second handle on the same path sees the document.
	f2, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	got, err := f2.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("Load = %q, want %q", got, doc)
	}
}

// TestFileSaveLeavesNoTempFiles verifies atomic writes clean up after
// themselves.
func TestFileSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "store.json"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := f.Save(context.Background(), []byte("{}")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "store.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected files after Save: %v", names)
	}
}
