package catalog

import "context"

const (
	// DefaultLimit applies when the caller sends no limit.
	DefaultLimit = 20
	// MaxLimit caps a page regardless of what the caller asks for.
	MaxLimit = 100
)

// ListProductsRequest carries the already-parsed, unclamped query
// parameters. The service clamps Limit/Offset.
type ListProductsRequest struct {
	Limit      int
	Offset     int
	CategoryID *uint
	Search     string
}

// ProductView is one product as the API presents it.
type ProductView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Category     string  `json:"category"`
	CategoryID   *uint   `json:"category_id"`
	AvailableQty float64 `json:"available_qty"`
	ImageURL     *string `json:"image_url"`
	UOM          string  `json:"uom"`
	SKU          string  `json:"sku"`
	IsAvailable  bool    `json:"is_available"`
}

// ProductPage is the envelope for a product listing.
type ProductPage struct {
	Products   []ProductView `json:"products"`
	TotalCount int64         `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
	HasMore    bool          `json:"has_more"`
}

// CategoryView is one category as the API presents it, with the full
// ancestor path resolved.
type CategoryView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	ParentID     *uint   `json:"parent_id"`
	ParentName   *string `json:"parent_name"`
	CompleteName string  `json:"complete_name"`
}

// CatalogService exposes read-only catalog queries.
type CatalogService interface {
	ListProducts(ctx context.Context, req ListProductsRequest) (*ProductPage, error)
	ListCategories(ctx context.Context) ([]CategoryView, error)
}
