package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the identifiers the cart endpoints need to resolve the
// caller without another lookup.
type Claims struct {
	UserID       uint   `json:"user_id"`
	CustomerID   uint   `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	jwt.RegisteredClaims
}

// SignSessionJWT creates the signed session identifier returned at login.
func SignSessionJWT(secret string, userID, customerID uint, customerName string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:       userID,
		CustomerID:   customerID,
		CustomerName: customerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    "customer-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidate parses a session JWT and validates signature and expiry.
func ParseAndValidate(secret string, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
