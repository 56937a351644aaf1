package api

import (
	"context"
	"log"
	"time"

	catalogpkg "github.com/RajaKumar829891/customer-API/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler bundles dependencies for catalog queries.
type ProductHandler struct {
	service catalogpkg.CatalogService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(svc catalogpkg.CatalogService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// Loosely typed: limit/offset/category_id arrive as numbers or numeric
// strings depending on the client.
type listProductsPayload struct {
	Limit      interface{} `json:"limit"`
	Offset     interface{} `json:"offset"`
	CategoryID interface{} `json:"category_id"`
	Search     string      `json:"search"`
}

// ListProducts handles POST /api/products.
func (h *ProductHandler) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p listProductsPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			log.Printf("list products: bad payload: %v", err)
		}

		req := catalogpkg.ListProductsRequest{Search: p.Search}

		if p.CategoryID != nil {
			id, ok := intField(p.CategoryID)
			if !ok {
				fail(c, "Invalid category_id format")
				return
			}
			cid := uint(id)
			req.CategoryID = &cid
		}

		if p.Limit != nil {
			limit, ok := intField(p.Limit)
			if !ok {
				fail(c, "Invalid limit or offset format")
				return
			}
			req.Limit = int(limit)
		}
		if p.Offset != nil {
			offset, ok := intField(p.Offset)
			if !ok {
				fail(c, "Invalid limit or offset format")
				return
			}
			req.Offset = int(offset)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		page, err := h.service.ListProducts(ctx, req)
		if err != nil {
			log.Printf("error listing products: %v", err)
			fail(c, "Failed to retrieve products")
			return
		}

		success(c, gin.H{
			"products":    page.Products,
			"total_count": page.TotalCount,
			"limit":       page.Limit,
			"offset":      page.Offset,
			"has_more":    page.HasMore,
		})
	}
}
