package api

import (
	"context"
	"errors"
	"log"
	"time"

	cartpkg "github.com/RajaKumar829891/customer-API/cart"
	"github.com/gin-gonic/gin"
)

// CartHandler bundles dependencies for the cart endpoints. Identity is
// read from the gin context populated by the session middleware; the
// handlers never touch cart state for unauthenticated callers.
type CartHandler struct {
	service cartpkg.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(svc cartpkg.CartService) *CartHandler {
	return &CartHandler{service: svc}
}

type addToCartPayload struct {
	ProductID interface{} `json:"product_id"`
	Quantity  interface{} `json:"quantity"`
}

// AddToCart handles POST /api/cart/add.
func (h *CartHandler) AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.GetUint("customer_id")

		var p addToCartPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			log.Printf("add to cart: bad payload: %v", err)
		}

		if p.ProductID == nil {
			fail(c, "Product ID is required")
			return
		}
		productID, ok := intField(p.ProductID)
		if !ok || productID <= 0 {
			fail(c, "Invalid product_id or quantity format")
			return
		}

		quantity := 1.0
		if p.Quantity != nil {
			quantity, ok = floatField(p.Quantity)
			if !ok {
				fail(c, "Invalid product_id or quantity format")
				return
			}
		}
		if quantity <= 0 {
			fail(c, "Quantity must be greater than 0")
			return
		}

		req := cartpkg.AddToCartRequest{ProductID: uint(productID), Quantity: quantity}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		res, err := h.service.AddToCart(ctx, customerID, req)
		if err != nil {
			switch {
			case errors.Is(err, cartpkg.ErrProductUnavailable):
				fail(c, "Product not found or not available for sale")
			case errors.Is(err, cartpkg.ErrInvalidQuantity):
				fail(c, "Quantity must be greater than 0")
			default:
				log.Printf("error adding to cart: %v", err)
				fail(c, "Failed to add product to cart")
			}
			return
		}

		success(c, gin.H{
			"message":          "Product added to cart successfully",
			"cart_id":          res.CartID,
			"cart_total":       res.CartTotal,
			"cart_items_count": res.ItemsCount,
			"product_name":     res.ProductName,
		})
	}
}

// ViewCart handles POST /api/cart/view. It never creates a cart: a
// customer without one gets a success response with a null cart.
func (h *CartHandler) ViewCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.GetUint("customer_id")
		customerName := c.GetString("customer_name")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		view, err := h.service.ViewCart(ctx, customerID, customerName)
		if err != nil {
			log.Printf("error viewing cart: %v", err)
			fail(c, "Failed to retrieve cart")
			return
		}

		if view == nil {
			success(c, gin.H{"cart": nil, "message": "Cart is empty"})
			return
		}
		success(c, gin.H{"cart": view})
	}
}
