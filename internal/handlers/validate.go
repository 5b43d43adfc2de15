package handlers

import (
	"strings"
	"unicode/utf8"

	"nexuscommerce/internal/models"
)

// Validation limits for record fields.
const (
	maxNameLen    = 300
	maxTextLen    = 100_000
	maxURLLen     = 2_000
	maxEmailLen   = 320
	maxAddressLen = 1_000
)

// validateProduct checks a submitted product and returns the first error found.
func validateProduct(p *models.Product) string {
	if p.Name.IsEmpty() {
		return "Product name is required."
	}
	if utf8.RuneCountInString(p.Name.EN)+utf8.RuneCountInString(p.Name.AR) > 2*maxNameLen {
		return "Product name is too long."
	}
	if p.Price < 0 {
		return "Price cannot be negative."
	}
	if p.Stock < 0 {
		return "Stock cannot be negative."
	}
	if utf8.RuneCountInString(p.MainImage) > maxURLLen {
		return "Main image URL is too long."
	}
	return ""
}

// validateCategory checks a submitted category.
func validateCategory(c *models.Category) string {
	if c.Name.IsEmpty() {
		return "Category name is required."
	}
	return ""
}

// validateOrder checks a submitted order.
func validateOrder(o *models.Order) string {
	if strings.TrimSpace(o.CustomerName) == "" {
		return "Customer name is required."
	}
	if utf8.RuneCountInString(o.ShippingAddress) > maxAddressLen {
		return "Shipping address is too long."
	}
	if !o.Status.Valid() {
		return "Unknown order status."
	}
	if o.TotalAmount < 0 {
		return "Total amount cannot be negative."
	}
	for _, it := range o.Items {
		if it.Quantity <= 0 {
			return "Order item quantity must be positive."
		}
	}
	return ""
}

// validateReview checks a submitted review.
func validateReview(r *models.Review) string {
	if !r.RatingValid() {
		return "Rating must be between 1 and 5."
	}
	if !r.Status.Valid() {
		return "Unknown review status."
	}
	if utf8.RuneCountInString(r.Comment.EN)+utf8.RuneCountInString(r.Comment.AR) > 2*maxTextLen {
		return "Comment is too long."
	}
	return ""
}

// validateArticle checks a submitted article.
func validateArticle(a *models.Article) string {
	if a.Title.IsEmpty() {
		return "Article title is required."
	}
	if utf8.RuneCountInString(a.Content.EN)+utf8.RuneCountInString(a.Content.AR) > 2*maxTextLen {
		return "Article content is too long."
	}
	return ""
}

// validateUser checks a submitted admin user.
func validateUser(u *models.User) string {
	if strings.TrimSpace(u.Name) == "" {
		return "Name is required."
	}
	email := strings.TrimSpace(u.Email)
	if email == "" || !strings.Contains(email, "@") || utf8.RuneCountInString(email) > maxEmailLen {
		return "A valid email is required."
	}
	if !u.Role.Valid() {
		return "Unknown role."
	}
	if u.Status != models.UserStatusActive && u.Status != models.UserStatusInactive {
		return "Unknown user status."
	}
	return ""
}

// validateSettings checks a submitted settings record.
func validateSettings(s *models.Settings) string {
	if strings.TrimSpace(s.BusinessName) == "" {
		return "Business name is required."
	}
	if !validHexColor(s.Theme.PrimaryColor) || !validHexColor(s.Theme.SecondaryColor) {
		return "Theme colors must be hex color strings like #4f46e5."
	}
	return ""
}

// validHexColor accepts #RGB and #RRGGBB.
func validHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
