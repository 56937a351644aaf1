package catalog

import (
	"context"

	"github.com/RajaKumar829891/customer-API/entity"
)

// ProductFilter narrows the catalog query. Sellable+active is always
// applied; CategoryID and Search are optional extras.
type ProductFilter struct {
	CategoryID *uint
	Search     string
	Limit      int
	Offset     int
}

// CatalogRepository specifies read operations over the product store.
type CatalogRepository interface {
	FindProducts(ctx context.Context, f ProductFilter) ([]entity.Product, error)
	CountProducts(ctx context.Context, f ProductFilter) (int64, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
}

// StockProvider is the optional stock subsystem. Implementations report
// on-hand quantity per product; the catalog treats any error as "stock
// unknown" rather than failing the request.
type StockProvider interface {
	AvailableQty(ctx context.Context, productID uint) (float64, error)
}
