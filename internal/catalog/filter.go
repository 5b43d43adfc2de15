// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"nexuscommerce/internal/models"
)

// Filters narrows a product listing. Every field is optional and
// independent; an unset field imposes no constraint, so the zero Filters
// matches everything.
type Filters struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	VendorID string
	Country  string
}

// IsZero reports whether no criteria are set.
func (f *Filters) IsZero() bool {
	return f == nil || (f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		f.VendorID == "" && f.Country == "")
}

// matches evaluates the conjunction of all supplied criteria for one product.
func (f *Filters) matches(p *models.CatalogProduct) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.VendorID != "" && p.VendorID != f.VendorID {
		return false
	}
	if f.Country != "" && p.Country != f.Country {
		return false
	}
	return true
}

// Apply returns the products satisfying every supplied criterion, in source
// order. The input is never mutated; the result is always a fresh slice.
// Category matches case-insensitively, price bounds are inclusive, vendor
// and country match exactly.
func Apply(products []models.CatalogProduct, f *Filters) []models.CatalogProduct {
	out := make([]models.CatalogProduct, 0, len(products))
	for i := range products {
		if f.IsZero() || f.matches(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
