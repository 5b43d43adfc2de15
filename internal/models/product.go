// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Product is a catalog item managed through the admin store.
// CategoryID points at a Category; nothing validates it on write, but the
// category deletion guard scans for it.
type Product struct {
	ID               string          `json:"id"`
	Name             BilingualString `json:"name"`
	Description      BilingualString `json:"description"`
	Price            float64         `json:"price"`
	MainImage        string          `json:"mainImage"`
	AdditionalImages []string        `json:"additionalImages"`
	VideoURL         string          `json:"videoUrl,omitempty"`
	CategoryID       string          `json:"categoryId"`
	Stock            int             `json:"stock"`
	SKU              string          `json:"sku"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// InStock returns true when at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
