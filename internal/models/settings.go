// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Theme holds the two hex color strings consumed by the storefront's
// apply-theme routine. The service only stores them.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// Settings is the store-wide configuration singleton. It always exists once
// the store is initialized and is only ever replaced wholesale — callers
// read the current value, change fields, and write the whole record back.
type Settings struct {
	Logo               string            `json:"logo"`
	Favicon            string            `json:"favicon"`
	SocialLinks        map[string]string `json:"socialLinks"`
	BusinessName       string            `json:"businessName"`
	SupportEmail       string            `json:"supportEmail"`
	PaymentPhoneNumber string            `json:"paymentPhoneNumber"`
	Address            string            `json:"address"`
	Theme              Theme             `json:"theme"`
}
