// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Article is a blog post managed through the admin store.
type Article struct {
	ID            string          `json:"id"`
	Title         BilingualString `json:"title"`
	Content       BilingualString `json:"content"`
	FeaturedImage string          `json:"featuredImage"`
	VideoURL      string          `json:"videoUrl,omitempty"`
	Author        string          `json:"author"`
	CreatedAt     time.Time       `json:"createdAt"`
}
