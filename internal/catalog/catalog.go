// Package catalog serves the marketplace storefront dataset. It models a
// remote catalog API: reads return fixed data after a short artificial
// latency, and product listings go through the filter combinator. Nothing
// here touches the admin store blob.
package catalog

import (
	"context"
	"time"

	"nexuscommerce/internal/models"
)

// DefaultLatency approximates the round-trip the storefront UI was built
// against.
const DefaultLatency = 300 * time.Millisecond

// Client reads the catalog dataset. Safe for concurrent use; the dataset is
// never mutated after construction.
type Client struct {
	latency time.Duration
}

// New returns a catalog client with the given simulated latency. Pass zero
// for immediate responses (tests).
func New(latency time.Duration) *Client {
	return &Client{latency: latency}
}

// wait blocks for the configured latency or until ctx is done.
func (c *Client) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Products returns the listings matching the given filters, in catalog
// order. A nil or empty filter returns the full catalog.
func (c *Client) Products(ctx context.Context, f *Filters) ([]models.CatalogProduct, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return Apply(catalogProducts, f), nil
}

// Orders returns the vendor dashboard's recent orders.
func (c *Client) Orders(ctx context.Context) ([]models.CatalogOrder, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.CatalogOrder(nil), catalogOrders...), nil
}

// Articles returns the storefront blog teasers.
func (c *Client) Articles(ctx context.Context) ([]models.CatalogArticle, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.CatalogArticle(nil), catalogArticles...), nil
}

// Reviews returns the storefront testimonials.
func (c *Client) Reviews(ctx context.Context) ([]models.CatalogReview, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.CatalogReview(nil), catalogReviews...), nil
}

// VendorStats returns the vendor dashboard headline numbers.
func (c *Client) VendorStats(ctx context.Context) (models.VendorStats, error) {
	if err := c.wait(ctx); err != nil {
		return models.VendorStats{}, err
	}
	return vendorStats, nil
}
