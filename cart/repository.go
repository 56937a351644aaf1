package cart

import (
	"context"
	"errors"

	"github.com/RajaKumar829891/customer-API/entity"
)

// ErrCartNotFound is returned when a customer has no draft order.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository specifies the sale-order store operations the cart
// flow needs. Total recomputation lives here: pricing and tax are store
// concerns, the service only triggers them.
type CartRepository interface {
	// GetDraftCart returns the customer's most recently modified draft
	// order with lines (and their products) loaded, or ErrCartNotFound.
	GetDraftCart(ctx context.Context, customerID uint) (*entity.Order, error)
	CreateDraftCart(ctx context.Context, customerID uint, currency string) (*entity.Order, error)

	GetProduct(ctx context.Context, productID uint) (*entity.Product, error)

	CreateLine(ctx context.Context, line *entity.OrderLine) (*entity.OrderLine, error)
	// AddLineQuantity increments (never sets) the stored quantity.
	AddLineQuantity(ctx context.Context, lineID uint, delta float64) error

	// RecomputeTotals reprices every line and the order amounts, then
	// returns the refreshed order with lines loaded.
	RecomputeTotals(ctx context.Context, orderID uint) (*entity.Order, error)
}
