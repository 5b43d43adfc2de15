// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nexuscommerce/internal/cache"
	"nexuscommerce/internal/catalog"
	"nexuscommerce/internal/models"
	"nexuscommerce/internal/store"
)

// Storefront groups the marketplace API handlers. The listing cache is
// optional; without it every products request waits out the catalog's
// simulated latency.
type Storefront struct {
	catalog  *catalog.Client
	listings *cache.ListingCache
	orders   *store.OrderStore
}

// NewStorefront creates the storefront handler group. listings may be nil
// when Valkey is not configured.
func NewStorefront(c *catalog.Client, listings *cache.ListingCache, orders *store.OrderStore) *Storefront {
	return &Storefront{catalog: c, listings: listings, orders: orders}
}

// parseFilters reads the product filter query parameters. Absent parameters
// impose no constraint.
func parseFilters(q url.Values) (*catalog.Filters, error) {
	f := &catalog.Filters{
		Category: q.Get("category"),
		VendorID: q.Get("vendor_id"),
		Country:  q.Get("country"),
	}
	for _, bound := range []struct {
		param string
		dst   **float64
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
	} {
		raw := q.Get(bound.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New(bound.param + " must be a number")
		}
		*bound.dst = &v
	}
	return f, nil
}

// filterSignature produces the canonical cache key for a filter set.
func filterSignature(f *catalog.Filters) string {
	var parts []string
	if f.Category != "" {
		parts = append(parts, "category="+strings.ToLower(f.Category))
	}
	if f.MinPrice != nil {
		parts = append(parts, "min="+strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		parts = append(parts, "max="+strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.VendorID != "" {
		parts = append(parts, "vendor="+f.VendorID)
	}
	if f.Country != "" {
		parts = append(parts, "country="+f.Country)
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, "&")
}

// Products returns catalog listings matching the filter query parameters,
// serving repeated filter signatures from the listing cache when available.
func (s *Storefront) Products(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sig := filterSignature(f)
	if s.listings != nil {
		if body, ok := s.listings.Get(r.Context(), sig); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}
	}

	items, err := s.catalog.Products(r.Context(), f)
	if err != nil {
		s.catalogError(w, "products", err)
		return
	}

	if s.listings != nil {
		if body, err := json.Marshal(items); err == nil {
			s.listings.Set(r.Context(), sig, body)
		}
	}
	respondJSON(w, http.StatusOK, items)
}

// Orders returns the vendor dashboard's recent orders.
func (s *Storefront) Orders(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Orders(r.Context())
	if err != nil {
		s.catalogError(w, "orders", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Articles returns the storefront blog teasers.
func (s *Storefront) Articles(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Articles(r.Context())
	if err != nil {
		s.catalogError(w, "articles", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Reviews returns the storefront testimonials.
func (s *Storefront) Reviews(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Reviews(r.Context())
	if err != nil {
		s.catalogError(w, "reviews", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// VendorStats returns the vendor dashboard headline numbers.
func (s *Storefront) VendorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.VendorStats(r.Context())
	if err != nil {
		s.catalogError(w, "vendor stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Checkout records a storefront purchase as a pending order in the admin
// store. The client submits customer contact fields, line items, and the
// total; id, status, and timestamp are filled server-side.
func (s *Storefront) Checkout(w http.ResponseWriter, r *http.Request) {
	var o models.Order
	if err := decodeJSON(r, &o); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order payload.")
		return
	}

	o.ID = store.NewID()
	o.Status = models.OrderStatusPending
	o.CreatedAt = time.Now().UTC()
	if msg := validateOrder(&o); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.orders.Save(r.Context(), o); err != nil {
		slog.Error("checkout save failed", "id", o.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not place order.")
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

// catalogError distinguishes client-cancelled requests from real faults.
func (s *Storefront) catalogError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		respondError(w, http.StatusRequestTimeout, "Request cancelled.")
		return
	}
	slog.Error("catalog request failed", "what", what, "error", err)
	respondError(w, http.StatusInternalServerError, "Could not load "+what+".")
}
