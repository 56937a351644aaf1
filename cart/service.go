package cart

import (
	"context"
	"errors"
)

// Cart failure modes the handler maps onto API messages.
var (
	ErrProductUnavailable = errors.New("product not found or not available for sale")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
)

// AddToCartRequest carries a validated add-line request.
type AddToCartRequest struct {
	ProductID uint
	Quantity  float64
}

// AddToCartResult summarizes the cart after the upsert.
type AddToCartResult struct {
	CartID      uint
	CartTotal   float64
	ItemsCount  int
	ProductName string
}

// CartLineView is one order line as the API presents it.
type CartLineView struct {
	ID            uint    `json:"id"`
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductSKU    string  `json:"product_sku"`
	Quantity      float64 `json:"quantity"`
	PriceUnit     float64 `json:"price_unit"`
	PriceSubtotal float64 `json:"price_subtotal"`
	PriceTotal    float64 `json:"price_total"`
	ImageURL      *string `json:"image_url"`
}

// CartView is the full cart as the API presents it.
type CartView struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Lines       []CartLineView `json:"lines"`
	Subtotal    float64        `json:"subtotal"`
	TaxAmount   float64        `json:"tax_amount"`
	Total       float64        `json:"total"`
	Currency    string         `json:"currency"`
	ItemsCount  int            `json:"items_count"`
	PartnerName string         `json:"partner_name"`
}

// CartService exposes the cart flow for an authenticated customer. The
// handler resolves the customer from the session before calling in.
type CartService interface {
	// AddToCart locates or lazily creates the customer's draft cart,
	// upserts a line for the product and recomputes totals.
	AddToCart(ctx context.Context, customerID uint, req AddToCartRequest) (*AddToCartResult, error)
	// ViewCart returns the current cart, or (nil, nil) when the customer
	// has none. It never creates a cart.
	ViewCart(ctx context.Context, customerID uint, customerName string) (*CartView, error)
}
