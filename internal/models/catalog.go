// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go defines the marketplace storefront types. These are served from
// the fixed catalog dataset, not from the admin store blob.
package models

// CatalogProductStatus is the listing state of a marketplace product.
type CatalogProductStatus string

const (
	CatalogProductActive     CatalogProductStatus = "Active"
	CatalogProductDraft      CatalogProductStatus = "Draft"
	CatalogProductOutOfStock CatalogProductStatus = "Out of Stock"
)

// CatalogProduct is a marketplace listing. Unlike the admin Product it is
// single-locale and carries vendor and rating data denormalized for display.
type CatalogProduct struct {
	ID                    string               `json:"id"`
	Name                  string               `json:"name"`
	SKU                   string               `json:"sku"`
	Category              string               `json:"category"`
	Price                 float64              `json:"price"`
	OriginalPrice         float64              `json:"originalPrice,omitempty"`
	Stock                 int                  `json:"stock"`
	TotalUnits            int                  `json:"totalUnits"`
	Status                CatalogProductStatus `json:"status"`
	Image                 string               `json:"image"`
	VendorID              string               `json:"vendorId"`
	VendorName            string               `json:"vendorName"`
	IsInstallmentEligible bool                 `json:"isInstallmentEligible"`
	Rating                float64              `json:"rating"`
	ReviewsCount          int                  `json:"reviewsCount"`
	Country               string               `json:"country"`
}

// Vendor is a marketplace seller profile.
type Vendor struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Logo             string  `json:"logo"`
	Rating           float64 `json:"rating"`
	IsVerified       bool    `json:"isVerified"`
	Followers        string  `json:"followers"`
	PositiveFeedback string  `json:"positiveFeedback"`
	MemberSince      string  `json:"memberSince"`
	Location         string  `json:"location"`
	Country          string  `json:"country"`
}

// CatalogPaymentMethod is how a storefront order was paid.
type CatalogPaymentMethod string

const (
	PaymentFull         CatalogPaymentMethod = "Full Payment"
	PaymentInstallments CatalogPaymentMethod = "Installments"
)

// CatalogOrder is the vendor dashboard's order summary row.
type CatalogOrder struct {
	ID               string               `json:"id"`
	CustomerName     string               `json:"customerName"`
	CustomerInitials string               `json:"customerInitials"`
	Date             string               `json:"date"`
	Status           OrderStatus          `json:"status"`
	PaymentMethod    CatalogPaymentMethod `json:"paymentMethod"`
	Amount           float64              `json:"amount"`
}

// CatalogArticle is a storefront blog teaser.
type CatalogArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// CatalogReview is a storefront testimonial.
type CatalogReview struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	UserAvatar  string `json:"userAvatar"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Date        string `json:"date"`
	ProductName string `json:"productName,omitempty"`
}

// VendorStats aggregates the vendor dashboard headline numbers.
type VendorStats struct {
	TotalSales     float64 `json:"totalSales"`
	TotalOrders    int     `json:"totalOrders"`
	ActiveProducts int     `json:"activeProducts"`
	SalesGrowth    float64 `json:"salesGrowth"`
	OrdersGrowth   float64 `json:"ordersGrowth"`
	ProductsGrowth float64 `json:"productsGrowth"`
	GMVGrowth      float64 `json:"gmvGrowth"`
}
