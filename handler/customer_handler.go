package api

import (
	"context"
	"errors"
	"log"
	"time"

	customerpkg "github.com/RajaKumar829891/customer-API/customer"
	"github.com/gin-gonic/gin"
)

// CustomerHandler bundles dependencies for customer signup.
type CustomerHandler struct {
	service customerpkg.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type createCustomerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// CreateCustomer handles POST /api/customer/create.
func (h *CustomerHandler) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createCustomerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			log.Printf("create customer: bad payload: %v", err)
		}

		for _, f := range []struct{ name, value string }{
			{"name", p.Name},
			{"email", p.Email},
			{"password", p.Password},
		} {
			if f.value == "" {
				fail(c, "Missing required field: "+f.name)
				return
			}
		}

		req := customerpkg.RegisterCustomerRequest{
			Name:     p.Name,
			Email:    p.Email,
			Phone:    p.Phone,
			Password: p.Password,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		reg, err := h.service.RegisterCustomer(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, customerpkg.ErrInvalidEmail):
				fail(c, "Invalid email format")
			case errors.Is(err, customerpkg.ErrEmailExists):
				fail(c, "Email already exists")
			case errors.Is(err, customerpkg.ErrUserLoginExists):
				fail(c, "User with this email already exists")
			default:
				log.Printf("error creating customer: %v", err)
				fail(c, "Internal server error")
			}
			return
		}

		success(c, gin.H{
			"message":     "Customer created successfully",
			"customer_id": reg.CustomerID,
			"user_id":     reg.UserID,
			"email":       reg.Email,
		})
	}
}
