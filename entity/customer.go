package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer is the storefront profile record created at signup.
// It is distinct from the User credential record; registration creates
// both and links the User to the Customer.
type Customer struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:text;not null"`
	Email     string         `json:"email" gorm:"type:text;uniqueIndex;not null"` // stored normalized (trimmed, lower-case)
	Phone     string         `json:"phone" gorm:"type:text"`
	Active    bool           `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
