// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups products. Products reference it weakly through
// Product.CategoryID; the reference is only enforced at category
// deletion time.
type Category struct {
	ID    string          `json:"id"`
	Name  BilingualString `json:"name"`
	Image string          `json:"image"`
}
