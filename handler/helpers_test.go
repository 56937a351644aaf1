package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authpkg "github.com/RajaKumar829891/customer-API/auth"
	cartpkg "github.com/RajaKumar829891/customer-API/cart"
	catalogpkg "github.com/RajaKumar829891/customer-API/catalog"
	customerpkg "github.com/RajaKumar829891/customer-API/customer"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, r http.Handler, path string, payload interface{}, bearer string) map[string]interface{} {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	// every endpoint answers 200; errors live in the body
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type mockCustomerService struct {
	reg  *customerpkg.Registration
	err  error
	last customerpkg.RegisterCustomerRequest
}

func (m *mockCustomerService) RegisterCustomer(_ context.Context, req customerpkg.RegisterCustomerRequest) (*customerpkg.Registration, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return m.reg, nil
}

type mockAuthService struct {
	session *authpkg.Session
	err     error
}

func (m *mockAuthService) Login(context.Context, authpkg.LoginRequest) (*authpkg.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

type mockCatalogService struct {
	page       *catalogpkg.ProductPage
	categories []catalogpkg.CategoryView
	err        error
	lastReq    catalogpkg.ListProductsRequest
}

func (m *mockCatalogService) ListProducts(_ context.Context, req catalogpkg.ListProductsRequest) (*catalogpkg.ProductPage, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func (m *mockCatalogService) ListCategories(context.Context) ([]catalogpkg.CategoryView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

type mockCartService struct {
	res            *cartpkg.AddToCartResult
	view           *cartpkg.CartView
	err            error
	lastCustomerID uint
	lastReq        cartpkg.AddToCartRequest
}

func (m *mockCartService) AddToCart(_ context.Context, customerID uint, req cartpkg.AddToCartRequest) (*cartpkg.AddToCartResult, error) {
	m.lastCustomerID = customerID
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.res, nil
}

func (m *mockCartService) ViewCart(_ context.Context, customerID uint, _ string) (*cartpkg.CartView, error) {
	m.lastCustomerID = customerID
	if m.err != nil {
		return nil, m.err
	}
	return m.view, nil
}
