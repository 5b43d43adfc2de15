// valkey_test.go holds integration tests for the Valkey backend. Tests are
// skipped when Valkey is not reachable.
package blob

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkey returns a Valkey-backed store on DB 15, or skips the test.
func testValkey(t *testing.T) *Valkey {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		client.Del(ctx, storeKey)
		client.Close()
	})
	return NewValkey(client)
}

// TestValkeyRoundTrip verifies Save/Load against a live Valkey.
func TestValkeyRoundTrip(t *testing.T) {
	ctx := context.Background()
	v := testValkey(t)

	if _, err := v.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty key: got %v, want ErrNotFound", err)
	}

	doc := []byte(`{"users":[]}`)
	if err := v.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := v.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("Load = %q, want %q", got, doc)
	}
}
