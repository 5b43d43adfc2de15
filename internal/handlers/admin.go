// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nexuscommerce/internal/models"
	"nexuscommerce/internal/store"
)

// Admin groups the backoffice API handlers and their store dependencies.
type Admin struct {
	products   *store.ProductStore
	categories *store.CategoryStore
	orders     *store.OrderStore
	reviews    *store.ReviewStore
	articles   *store.ArticleStore
	users      *store.UserStore
	settings   *store.SettingStore
}

// NewAdmin creates the admin handler group with the given stores.
func NewAdmin(products *store.ProductStore, categories *store.CategoryStore, orders *store.OrderStore, reviews *store.ReviewStore, articles *store.ArticleStore, users *store.UserStore, settings *store.SettingStore) *Admin {
	return &Admin{
		products:   products,
		categories: categories,
		orders:     orders,
		reviews:    reviews,
		articles:   articles,
		users:      users,
		settings:   settings,
	}
}

// stamp fills a missing id and createdAt on a newly submitted record.
// The admin UI usually generates both; the server covers bare records.
func stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = store.NewID()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}

// --- Products ---

// ListProducts returns all products.
func (a *Admin) ListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := a.products.List(r.Context())
	if err != nil {
		slog.Error("list products failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load products.")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// SaveProduct upserts a product.
func (a *Admin) SaveProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product payload.")
		return
	}
	if msg := validateProduct(&p); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	stamp(&p.ID, &p.CreatedAt)

	if err := a.products.Save(r.Context(), p); err != nil {
		slog.Error("save product failed", "id", p.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save product.")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// DeleteProduct removes a product by id.
func (a *Admin) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.products.Delete(r.Context(), id); err != nil {
		slog.Error("delete product failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete product.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Categories ---

// ListCategories returns all categories.
func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := a.categories.List(r.Context())
	if err != nil {
		slog.Error("list categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load categories.")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// SaveCategory upserts a category.
func (a *Admin) SaveCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category payload.")
		return
	}
	if msg := validateCategory(&c); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if c.ID == "" {
		c.ID = store.NewID()
	}

	if err := a.categories.Save(r.Context(), c); err != nil {
		slog.Error("save category failed", "id", c.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save category.")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// DeleteCategory removes a category unless a product still references it,
// in which case the constraint violation surfaces as a 409 with the
// user-facing message.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := a.categories.Delete(r.Context(), id)
	if errors.Is(err, store.ErrCategoryInUse) {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		slog.Error("delete category failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete category.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Orders ---

// ListOrders returns all orders.
func (a *Admin) ListOrders(w http.ResponseWriter, r *http.Request) {
	items, err := a.orders.List(r.Context())
	if err != nil {
		slog.Error("list orders failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load orders.")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// UpdateOrder replaces an existing order; an unknown id is silently ignored.
func (a *Admin) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var o models.Order
	if err := decodeJSON(r, &o); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order payload.")
		return
	}
	if msg := validateOrder(&o); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.orders.Update(r.Context(), o); err != nil {
		slog.Error("update order failed", "id", o.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not update order.")
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// DeleteOrder removes an order by id.
func (a *Admin) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.orders.Delete(r.Context(), id); err != nil {
		slog.Error("delete order failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete order.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Reviews ---

// ListReviews returns all reviews.
func (a *Admin) ListReviews(w http.ResponseWriter, r *http.Request) {
	items, err := a.reviews.List(r.Context())
	if err != nil {
		slog.Error("list reviews failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load reviews.")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// SaveReview upserts a review.
func (a *Admin) SaveReview(w http.ResponseWriter, r *http.Request) {
	var rev models.Review
	if err := decodeJSON(r, &rev); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid review payload.")
		return
	}
	if msg := validateReview(&rev); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	stamp(&rev.ID, &rev.CreatedAt)

	if err := a.reviews.Save(r.Context(), rev); err != nil {
		slog.Error("save review failed", "id", rev.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save review.")
		return
	}
	respondJSON(w, http.StatusOK, rev)
}

// UpdateReview replaces an existing review (moderation edits); an unknown
// id is silently ignored.
func (a *Admin) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var rev models.Review
	if err := decodeJSON(r, &rev); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid review payload.")
		return
	}
	if msg := validateReview(&rev); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.reviews.Update(r.Context(), rev); err != nil {
		slog.Error("update review failed", "id", rev.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not update review.")
		return
	}
	respondJSON(w, http.StatusOK, rev)
}

// DeleteReview removes a review by id.
func (a *Admin) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.reviews.Delete(r.Context(), id); err != nil {
		slog.Error("delete review failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete review.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Articles ---

// ListArticles returns all articles.
func (a *Admin) ListArticles(w http.ResponseWriter, r *http.Request) {
	items, err := a.articles.List(r.Context())
	if err != nil {
		slog.Error("list articles failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load articles.")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// SaveArticle upserts an article.
func (a *Admin) SaveArticle(w http.ResponseWriter, r *http.Request) {
	var art models.Article
	if err := decodeJSON(r, &art); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid article payload.")
		return
	}
	if msg := validateArticle(&art); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	stamp(&art.ID, &art.CreatedAt)

	if err := a.articles.Save(r.Context(), art); err != nil {
		slog.Error("save article failed", "id", art.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save article.")
		return
	}
	respondJSON(w, http.StatusOK, art)
}

// DeleteArticle removes an article by id.
func (a *Admin) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.articles.Delete(r.Context(), id); err != nil {
		slog.Error("delete article failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete article.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Users ---

// ListUsers returns all admin users.
func (a *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	items, err := a.users.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load users.")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// SaveUser upserts an admin user.
func (a *Admin) SaveUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := decodeJSON(r, &u); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user payload.")
		return
	}
	if msg := validateUser(&u); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	stamp(&u.ID, &u.CreatedAt)

	if err := a.users.Save(r.Context(), u); err != nil {
		slog.Error("save user failed", "id", u.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save user.")
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// DeleteUser removes an admin user by id.
func (a *Admin) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.users.Delete(r.Context(), id); err != nil {
		slog.Error("delete user failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete user.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Settings ---

// GetSettings returns the settings singleton.
func (a *Admin) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := a.settings.Get(r.Context())
	if err != nil {
		slog.Error("get settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load settings.")
		return
	}
	respondJSON(w, http.StatusOK, s)
}

// UpdateSettings replaces the settings singleton wholesale.
func (a *Admin) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var s models.Settings
	if err := decodeJSON(r, &s); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid settings payload.")
		return
	}
	if msg := validateSettings(&s); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.settings.Update(r.Context(), s); err != nil {
		slog.Error("update settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not update settings.")
		return
	}
	respondJSON(w, http.StatusOK, s)
}
