package api

import (
	"testing"

	catalogpkg "github.com/RajaKumar829891/customer-API/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRouter(svc catalogpkg.CatalogService) *gin.Engine {
	r := gin.New()
	r.POST("/api/products", NewProductHandler(svc).ListProducts())
	return r
}

func TestListProductsHandler(t *testing.T) {
	svc := &mockCatalogService{page: &catalogpkg.ProductPage{
		Products:   []catalogpkg.ProductView{{ID: 1, Name: "Mug"}},
		TotalCount: 42,
		Limit:      20,
		Offset:     0,
		HasMore:    true,
	}}

	out := postJSON(t, productRouter(svc), "/api/products", map[string]interface{}{}, "")

	assert.Equal(t, "success", out["status"])
	assert.Equal(t, float64(42), out["total_count"])
	assert.Equal(t, true, out["has_more"])
	require.Len(t, out["products"], 1)
}

func TestListProductsHandlerPassesQuery(t *testing.T) {
	svc := &mockCatalogService{page: &catalogpkg.ProductPage{}}

	// clients send numbers or numeric strings; both must parse
	postJSON(t, productRouter(svc), "/api/products",
		map[string]interface{}{"limit": 5, "offset": "10", "category_id": "3", "search": "mug"}, "")

	assert.Equal(t, 5, svc.lastReq.Limit)
	assert.Equal(t, 10, svc.lastReq.Offset)
	require.NotNil(t, svc.lastReq.CategoryID)
	assert.Equal(t, uint(3), *svc.lastReq.CategoryID)
	assert.Equal(t, "mug", svc.lastReq.Search)
}

func TestListProductsHandlerFormatErrors(t *testing.T) {
	cases := []struct {
		payload map[string]interface{}
		message string
	}{
		{map[string]interface{}{"limit": "lots"}, "Invalid limit or offset format"},
		{map[string]interface{}{"offset": "first"}, "Invalid limit or offset format"},
		{map[string]interface{}{"category_id": "toys"}, "Invalid category_id format"},
	}
	for _, tc := range cases {
		out := postJSON(t, productRouter(&mockCatalogService{}), "/api/products", tc.payload, "")
		assert.Equal(t, "error", out["status"])
		assert.Equal(t, tc.message, out["message"])
	}
}

func TestListProductsHandlerNoPayload(t *testing.T) {
	svc := &mockCatalogService{page: &catalogpkg.ProductPage{Limit: 20}}
	out := postJSON(t, productRouter(svc), "/api/products", nil, "")

	assert.Equal(t, "success", out["status"])
	assert.Equal(t, 0, svc.lastReq.Limit) // defaults applied by the service
}
