package entity

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus enumerates the lifecycle of a sale order. Only draft
// orders are touched by this API; the rest belong to checkout.
type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"     // mutable cart
	OrderConfirmed OrderStatus = "confirmed" // checked out
	OrderDone      OrderStatus = "done"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a sale order. In draft status it is the customer's cart:
// lazily created on the first add-to-cart, never deleted here.
type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"type:text;index"` // reference like "SO00042"
	CustomerID    uint           `json:"customer_id" gorm:"index;not null"`
	Status        OrderStatus    `json:"status" gorm:"type:text;index;not null;default:'draft'"`
	Currency      string         `json:"currency" gorm:"type:text;not null;default:'USD'"`
	AmountUntaxed float64        `json:"amount_untaxed" gorm:"type:double precision;not null;default:0"`
	AmountTax     float64        `json:"amount_tax" gorm:"type:double precision;not null;default:0"`
	AmountTotal   float64        `json:"amount_total" gorm:"type:double precision;not null;default:0"`
	Lines         []OrderLine    `json:"lines" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderLine references one product within an order. At most one line
// exists per (order, product); repeated adds increment Quantity.
type OrderLine struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"index:idx_order_product,unique;not null"`
	ProductID uint    `json:"product_id" gorm:"index:idx_order_product,unique;not null"`
	Product   *Product `json:"-" gorm:"foreignKey:ProductID"`
	Quantity  float64 `json:"quantity" gorm:"type:double precision;not null"`
	// PriceUnit is captured from the product's list price when the line
	// is first created; later list-price changes do not reprice it.
	PriceUnit     float64        `json:"price_unit" gorm:"type:double precision;not null"`
	PriceSubtotal float64        `json:"price_subtotal" gorm:"type:double precision;not null;default:0"`
	PriceTotal    float64        `json:"price_total" gorm:"type:double precision;not null;default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
