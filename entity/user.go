package entity

import (
	"time"

	"gorm.io/gorm"
)

// Roles that grant API access at login. Anything else authenticates
// but is denied.
const (
	RolePortal   = "portal"
	RoleInternal = "internal"
)

// User is the login-credential record backing a Customer profile.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"type:text;not null"`
	Login        string         `json:"login" gorm:"type:text;uniqueIndex;not null"` // normalized email
	Email        string         `json:"email" gorm:"type:text;not null"`
	PasswordHash string         `json:"-" gorm:"type:text;not null"`
	Role         string         `json:"role" gorm:"type:text;index;not null;default:'portal'"`
	CustomerID   uint           `json:"customer_id" gorm:"index;not null"`
	Active       bool           `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// HasAPIAccess reports whether the user's role is allowed to use the API.
func (u *User) HasAPIAccess() bool {
	return u.Role == RolePortal || u.Role == RoleInternal
}
