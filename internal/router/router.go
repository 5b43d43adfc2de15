// Package router sets up the HTTP routes and middleware chains for the
// Nexus Commerce API. It organizes routes into the admin store surface and
// the read-mostly catalog surface.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nexuscommerce/internal/handlers"
	"nexuscommerce/internal/middleware"
)

// Checkout rate limit. Generous for humans, tight enough to keep scripted
// order spam out of the store document.
const (
	checkoutLimit  = 10
	checkoutWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned stop function releases the
// checkout rate limiter's janitor goroutine.
func New(admin *handlers.Admin, front *handlers.Storefront) (chi.Router, func()) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/healthz", healthHandler)

	// Admin store surface. Full CRUD over the persisted store document.
	r.Route("/api/admin", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", admin.ListProducts)
			r.Post("/", admin.SaveProduct)
			r.Delete("/{id}", admin.DeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", admin.ListCategories)
			r.Post("/", admin.SaveCategory)
			r.Delete("/{id}", admin.DeleteCategory)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", admin.ListOrders)
			r.Put("/", admin.UpdateOrder)
			r.Delete("/{id}", admin.DeleteOrder)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", admin.ListReviews)
			r.Post("/", admin.SaveReview)
			r.Put("/", admin.UpdateReview)
			r.Delete("/{id}", admin.DeleteReview)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", admin.ListArticles)
			r.Post("/", admin.SaveArticle)
			r.Delete("/{id}", admin.DeleteArticle)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", admin.ListUsers)
			r.Post("/", admin.SaveUser)
			r.Delete("/{id}", admin.DeleteUser)
		})

		r.Get("/settings", admin.GetSettings)
		r.Put("/settings", admin.UpdateSettings)
	})

	// Catalog surface. Read-only marketplace data plus checkout.
	checkoutLimiter := middleware.NewRateLimiter(checkoutLimit, checkoutWindow)
	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/products", front.Products)
		r.Get("/orders", front.Orders)
		r.Get("/articles", front.Articles)
		r.Get("/reviews", front.Reviews)
		r.Get("/vendor/stats", front.VendorStats)

		r.With(checkoutLimiter.Middleware).Post("/checkout", front.Checkout)
	})

	return r, checkoutLimiter.Stop
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
