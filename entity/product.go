package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Category is a product category node. Categories form a tree via
// ParentID; the full path is the " / "-joined chain of ancestor names.
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:text;not null"`
	ParentID  *uint          `json:"parent_id,omitempty" gorm:"index"`
	Parent    *Category      `json:"-" gorm:"foreignKey:ParentID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Product is a catalog record. The API never mutates products; they are
// seeded or managed elsewhere.
type Product struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"type:text;index;not null"`
	SKU             string `json:"sku" gorm:"type:text;index"`
	Description     string `json:"description" gorm:"type:text"`
	SaleDescription string `json:"sale_description" gorm:"type:text"`
	ListPrice       float64 `json:"list_price" gorm:"type:double precision;not null;default:0"`
	Currency        string  `json:"currency" gorm:"type:text;not null;default:'USD'"`
	// TaxRate is a percentage applied by total recomputation (e.g. 15 = 15%).
	TaxRate       float64        `json:"tax_rate" gorm:"type:double precision;not null;default:0"`
	CategoryID    *uint          `json:"category_id,omitempty" gorm:"index"`
	Category      *Category      `json:"-" gorm:"foreignKey:CategoryID"`
	UnitOfMeasure string         `json:"uom" gorm:"type:text;default:'Units'"`
	Image         string         `json:"-" gorm:"type:text"` // stored image path, empty = no image
	Sellable      bool           `json:"sellable" gorm:"default:true;index"`
	Active        bool           `json:"active" gorm:"default:true;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// SaleDescriptionOrDefault prefers the sale description and falls back
// to the general one.
func (p *Product) SaleDescriptionOrDefault() string {
	if p.SaleDescription != "" {
		return p.SaleDescription
	}
	return p.Description
}

// IsAvailable reports whether the product can be sold through the API.
func (p *Product) IsAvailable() bool {
	return p.Sellable && p.Active
}

// ImageURL interpolates the product image path below baseURL, or nil
// when the product has no image.
func (p *Product) ImageURL(baseURL string) *string {
	if p.Image == "" {
		return nil
	}
	url := fmt.Sprintf("%s/media/products/%d/image", baseURL, p.ID)
	return &url
}

// StockLevel holds the on-hand quantity for one product. It belongs to
// the optional stock subsystem; the catalog tolerates its absence.
type StockLevel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ProductID uint           `json:"product_id" gorm:"uniqueIndex;not null"`
	Quantity  float64        `json:"quantity" gorm:"type:double precision;not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
