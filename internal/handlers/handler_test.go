// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Each test gets a fresh in-memory store and a zero-latency catalog, so
// handler tests run without external services.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"nexuscommerce/internal/blob"
	"nexuscommerce/internal/catalog"
	"nexuscommerce/internal/database"
	"nexuscommerce/internal/store"
)

// testEnv holds the handler groups and router for one test.
type testEnv struct {
	db     *database.DB
	router chi.Router
}

// newTestEnv wires the full handler surface over an in-memory store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := database.Open(blob.NewMemory())
	t.Cleanup(func() { db.Close() })

	admin := NewAdmin(
		store.NewProductStore(db),
		store.NewCategoryStore(db),
		store.NewOrderStore(db),
		store.NewReviewStore(db),
		store.NewArticleStore(db),
		store.NewUserStore(db),
		store.NewSettingStore(db),
	)
	front := NewStorefront(catalog.New(0), nil, store.NewOrderStore(db))

	r := chi.NewRouter()
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/products", admin.ListProducts)
		r.Post("/products", admin.SaveProduct)
		r.Delete("/products/{id}", admin.DeleteProduct)
		r.Get("/categories", admin.ListCategories)
		r.Post("/categories", admin.SaveCategory)
		r.Delete("/categories/{id}", admin.DeleteCategory)
		r.Get("/orders", admin.ListOrders)
		r.Put("/orders", admin.UpdateOrder)
		r.Delete("/orders/{id}", admin.DeleteOrder)
		r.Get("/reviews", admin.ListReviews)
		r.Post("/reviews", admin.SaveReview)
		r.Put("/reviews", admin.UpdateReview)
		r.Delete("/reviews/{id}", admin.DeleteReview)
		r.Get("/articles", admin.ListArticles)
		r.Post("/articles", admin.SaveArticle)
		r.Delete("/articles/{id}", admin.DeleteArticle)
		r.Get("/users", admin.ListUsers)
		r.Post("/users", admin.SaveUser)
		r.Delete("/users/{id}", admin.DeleteUser)
		r.Get("/settings", admin.GetSettings)
		r.Put("/settings", admin.UpdateSettings)
	})
	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/products", front.Products)
		r.Get("/orders", front.Orders)
		r.Get("/articles", front.Articles)
		r.Get("/reviews", front.Reviews)
		r.Get("/vendor/stats", front.VendorStats)
		r.Post("/checkout", front.Checkout)
	})

	return &testEnv{db: db, router: r}
}

// do performs a request against the test router. body may be nil or any
// JSON-encodable value.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response body into dst.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// wantStatus fails the test when the recorded status differs.
func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}
