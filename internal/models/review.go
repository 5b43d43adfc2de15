// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ReviewStatus represents the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusHidden   ReviewStatus = "hidden"
)

// Valid returns true for one of the known moderation states.
func (s ReviewStatus) Valid() bool {
	return s == ReviewStatusPending || s == ReviewStatusApproved || s == ReviewStatusHidden
}

// Review is a customer product review. ProductID is a weak reference.
type Review struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	ProductID     string          `json:"productId"`
	Rating        int             `json:"rating"`
	Comment       BilingualString `json:"comment"`
	Reply         string          `json:"reply,omitempty"`
	Status        ReviewStatus    `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RatingValid returns true when the rating is within the 1-5 scale.
func (r *Review) RatingValid() bool {
	return r.Rating >= 1 && r.Rating <= 5
}
