package customer

import (
	"context"
	"errors"
	"strings"
)

// Registration failure modes the handler maps onto API messages.
var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmailExists     = errors.New("email already exists")
	ErrUserLoginExists = errors.New("user with this email already exists")
)

// RegisterCustomerRequest carries the data required to register a customer.
// Name, Email and Password are required; the handler validates presence.
type RegisterCustomerRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Registration is the result of a successful signup: the new profile
// and its linked credential record.
type Registration struct {
	CustomerID uint
	UserID     uint
	Email      string
}

// CustomerService exposes customer signup.
type CustomerService interface {
	RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*Registration, error)
}

// NormalizeEmail trims and lower-cases an email address. Registration
// and login both normalize before touching the store, so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
