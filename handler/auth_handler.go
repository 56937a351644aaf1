package api

import (
	"context"
	"errors"
	"log"
	"time"

	authpkg "github.com/RajaKumar829891/customer-API/auth"
	"github.com/gin-gonic/gin"
)

// AuthHandler bundles dependencies for customer login.
type AuthHandler struct {
	service authpkg.Service
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc authpkg.Service) *AuthHandler { return &AuthHandler{service: svc} }

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/customer/login.
func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			log.Printf("login: bad payload: %v", err)
		}
		if p.Email == "" || p.Password == "" {
			fail(c, "Email and password are required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		session, err := h.service.Login(ctx, authpkg.LoginRequest{Email: p.Email, Password: p.Password})
		if err != nil {
			switch {
			case errors.Is(err, authpkg.ErrInvalidCredentials):
				fail(c, "Invalid email or password")
			case errors.Is(err, authpkg.ErrAccessDenied):
				fail(c, "Access denied")
			default:
				log.Printf("error during login: %v", err)
				fail(c, "Login failed")
			}
			return
		}

		success(c, gin.H{
			"message":        "Login successful",
			"user_id":        session.UserID,
			"customer_id":    session.CustomerID,
			"customer_name":  session.CustomerName,
			"customer_email": session.CustomerEmail,
			"session_token":  session.SessionToken,
			"session_id":     session.SessionID,
		})
	}
}
