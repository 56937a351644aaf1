package auth

import (
	"context"
	"errors"
)

// Login failure modes. Lookup misses and bad passwords both collapse
// into ErrInvalidCredentials so the response never reveals which half
// of the pair was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccessDenied       = errors.New("access denied")
)

// LoginRequest carries the credential pair. Both fields are required;
// the handler validates presence.
type LoginRequest struct {
	Email    string
	Password string
}

// Session is the result of a successful login.
type Session struct {
	UserID        uint
	CustomerID    uint
	CustomerName  string
	CustomerEmail string
	// SessionID is the signed bearer credential accepted by the cart
	// endpoints.
	SessionID string
	// SessionToken is a freshly generated random value returned to the
	// caller. It is not persisted or checked by this service.
	SessionToken string
}

// Service provides login.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Session, error)
}
