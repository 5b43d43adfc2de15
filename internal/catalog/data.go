// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// data.go holds the fixed marketplace dataset served by the catalog client.
package catalog

import "nexuscommerce/internal/models"

var catalogProducts = []models.CatalogProduct{
	{
		ID: "p1", Name: "Smartphone Pro Max 512GB Platinum", SKU: "SM-512-PT",
		Category: "Electronics", Price: 1199, OriginalPrice: 1349,
		Stock: 124, TotalUnits: 150, Status: models.CatalogProductActive,
		Image:    "https://picsum.photos/seed/phone1/600/600",
		VendorID: "v1", VendorName: "TechHub Official",
		IsInstallmentEligible: true, Rating: 4.9, ReviewsCount: 1248, Country: "US",
	},
	{
		ID: "p2", Name: "Mirrorless 4K Pro Camera Kit", SKU: "CAM-4K-PRO",
		Category: "Electronics", Price: 2450,
		Stock: 45, TotalUnits: 100, Status: models.CatalogProductActive,
		Image:    "https://picsum.photos/seed/cam1/600/600",
		VendorID: "v1", VendorName: "TechHub Official",
		IsInstallmentEligible: true, Rating: 4.8, ReviewsCount: 542, Country: "US",
	},
	{
		ID: "p3", Name: "Ergonomic Mesh Office Chair", SKU: "OFF-CH-01",
		Category: "Home", Price: 349, OriginalPrice: 499,
		Stock: 8, TotalUnits: 80, Status: models.CatalogProductActive,
		Image:    "https://picsum.photos/seed/chair/600/600",
		VendorID: "v2", VendorName: "Luxe Living",
		IsInstallmentEligible: false, Rating: 4.7, ReviewsCount: 231, Country: "UK",
	},
	{
		ID: "p4", Name: "Wireless Noise Cancelling Headphones", SKU: "AUD-HD-99",
		Category: "Electronics", Price: 299,
		Stock: 0, TotalUnits: 200, Status: models.CatalogProductOutOfStock,
		Image:    "https://picsum.photos/seed/audio/600/600",
		VendorID: "v4", VendorName: "Audio Master",
		IsInstallmentEligible: true, Rating: 4.9, ReviewsCount: 3892, Country: "EG",
	},
	{
		ID: "p5", Name: "Premium Leather Jacket", SKU: "FASH-LJ-02",
		Category: "Fashion", Price: 180,
		Stock: 25, TotalUnits: 50, Status: models.CatalogProductActive,
		Image:    "https://picsum.photos/seed/jacket/600/600",
		VendorID: "v3", VendorName: "Fashionista",
		IsInstallmentEligible: true, Rating: 4.6, ReviewsCount: 112, Country: "SA",
	},
	{
		ID: "p6", Name: "Smart Robotic Vacuum", SKU: "HOME-RV-500",
		Category: "Home", Price: 450,
		Stock: 12, TotalUnits: 30, Status: models.CatalogProductActive,
		Image:    "https://picsum.photos/seed/vacuum/600/600",
		VendorID: "v2", VendorName: "Luxe Living",
		IsInstallmentEligible: true, Rating: 4.4, ReviewsCount: 88, Country: "UK",
	},
}

var catalogArticles = []models.CatalogArticle{
	{
		ID: "a1", Title: "Top 10 Tech Trends in 2024",
		Excerpt: "Explore the technologies that are shaping the future of global commerce.",
		Content: "Long content here...", Author: "Tech Guru", Date: "Jan 15, 2024",
		Image: "https://picsum.photos/seed/techblog/800/400", Category: "Technology",
	},
	{
		ID: "a2", Title: "How Installments are Changing Shopping",
		Excerpt: "Buy Now Pay Later is no longer just a trend, it is a necessity.",
		Content: "Long content here...", Author: "Finance Expert", Date: "Jan 10, 2024",
		Image: "https://picsum.photos/seed/finance/800/400", Category: "Shopping",
	},
	{
		ID: "a3", Title: "Eco-Friendly Living: Start with Your Home",
		Excerpt: "Simple changes in your home can lead to a sustainable lifestyle.",
		Content: "Long content here...", Author: "Eco Warrior", Date: "Jan 05, 2024",
		Image: "https://picsum.photos/seed/eco/800/400", Category: "Lifestyle",
	},
}

var catalogReviews = []models.CatalogReview{
	{
		ID: "r1", UserName: "Alice Smith",
		UserAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Alice",
		Rating:     5, Comment: "ShopMax has the best installment plans! I got my new camera without any hassle.",
		Date: "2 days ago",
	},
	{
		ID: "r2", UserName: "Mark Johnson",
		UserAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Mark",
		Rating:     4, Comment: "Great global vendors, but shipping to my region took a bit longer than expected.",
		Date: "1 week ago",
	},
	{
		ID: "r3", UserName: "Sofia Rodriguez",
		UserAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sofia",
		Rating:     5, Comment: "The support team is amazing. They helped me with my verification process in minutes.",
		Date: "3 weeks ago",
	},
}

var catalogOrders = []models.CatalogOrder{
	{
		ID: "#ORD-7721", CustomerName: "John Cooper", CustomerInitials: "JC",
		Date: "Oct 24, 2023", Status: models.OrderStatusUnderReview,
		PaymentMethod: models.PaymentInstallments, Amount: 1250,
	},
	{
		ID: "#ORD-7719", CustomerName: "Sarah Jenkins", CustomerInitials: "SJ",
		Date: "Oct 23, 2023", Status: models.OrderStatusShipped,
		PaymentMethod: models.PaymentFull, Amount: 420,
	},
	{
		ID: "#ORD-7718", CustomerName: "Robert Fox", CustomerInitials: "RF",
		Date: "Oct 23, 2023", Status: models.OrderStatusPending,
		PaymentMethod: models.PaymentInstallments, Amount: 2100,
	},
	{
		ID: "#ORD-7715", CustomerName: "Jane Doe", CustomerInitials: "JD",
		Date: "Oct 22, 2023", Status: models.OrderStatusDelivered,
		PaymentMethod: models.PaymentFull, Amount: 89,
	},
}

var vendorStats = models.VendorStats{
	TotalSales:     42500,
	TotalOrders:    1284,
	ActiveProducts: 456,
	SalesGrowth:    12.5,
	OrdersGrowth:   5.2,
	ProductsGrowth: 2.1,
	GMVGrowth:      8.4,
}
