package api

import (
	"testing"

	authpkg "github.com/RajaKumar829891/customer-API/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func loginRouter(svc authpkg.Service) *gin.Engine {
	r := gin.New()
	r.POST("/api/customer/login", NewAuthHandler(svc).Login())
	return r
}

func TestLoginHandler(t *testing.T) {
	svc := &mockAuthService{session: &authpkg.Session{
		UserID:        7,
		CustomerID:    3,
		CustomerName:  "A",
		CustomerEmail: "a@b.com",
		SessionID:     "jwt-token",
		SessionToken:  "deadbeef",
	}}

	out := postJSON(t, loginRouter(svc), "/api/customer/login",
		map[string]interface{}{"email": "a@b.com", "password": "x"}, "")

	assert.Equal(t, "success", out["status"])
	assert.Equal(t, float64(7), out["user_id"])
	assert.Equal(t, float64(3), out["customer_id"])
	assert.Equal(t, "A", out["customer_name"])
	assert.Equal(t, "a@b.com", out["customer_email"])
	assert.Equal(t, "jwt-token", out["session_id"])
	assert.Equal(t, "deadbeef", out["session_token"])
}

func TestLoginHandlerMissingFields(t *testing.T) {
	for _, payload := range []map[string]interface{}{
		{"password": "x"},
		{"email": "a@b.com"},
		{},
	} {
		out := postJSON(t, loginRouter(&mockAuthService{}), "/api/customer/login", payload, "")
		assert.Equal(t, "error", out["status"])
		assert.Equal(t, "Email and password are required", out["message"])
	}
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	svc := &mockAuthService{err: authpkg.ErrInvalidCredentials}
	out := postJSON(t, loginRouter(svc), "/api/customer/login",
		map[string]interface{}{"email": "a@b.com", "password": "wrong"}, "")

	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Invalid email or password", out["message"])
}

func TestLoginHandlerAccessDenied(t *testing.T) {
	svc := &mockAuthService{err: authpkg.ErrAccessDenied}
	out := postJSON(t, loginRouter(svc), "/api/customer/login",
		map[string]interface{}{"email": "a@b.com", "password": "x"}, "")

	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Access denied", out["message"])
}
