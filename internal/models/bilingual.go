// Package models defines the record types held in the store blob and the
// storefront catalog types. All entities are flat records identified by an
// opaque string id, unique within their own collection.
package models

import "strings"

// BilingualString holds the English/Arabic pair used for every localized
// field (names, descriptions, titles, comments).
type BilingualString struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// IsEmpty returns true when neither locale has content.
func (b BilingualString) IsEmpty() bool {
	return strings.TrimSpace(b.EN) == "" && strings.TrimSpace(b.AR) == ""
}
