package api

import (
	"context"
	"log"
	"time"

	catalogpkg "github.com/RajaKumar829891/customer-API/catalog"
	"github.com/gin-gonic/gin"
)

// UtilityHandler serves the category listing and the health check.
type UtilityHandler struct {
	service catalogpkg.CatalogService
}

// NewUtilityHandler constructs a UtilityHandler.
func NewUtilityHandler(svc catalogpkg.CatalogService) *UtilityHandler {
	return &UtilityHandler{service: svc}
}

// ListCategories handles POST /api/categories. Flat listing, no
// pagination or filter.
func (h *UtilityHandler) ListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		categories, err := h.service.ListCategories(ctx)
		if err != nil {
			log.Printf("error listing categories: %v", err)
			fail(c, "Failed to retrieve categories")
			return
		}

		success(c, gin.H{
			"categories":  categories,
			"total_count": len(categories),
		})
	}
}

// Health handles POST /api/health. No input, no failure path.
func (h *UtilityHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		success(c, gin.H{
			"message":   "API is working",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
