package middleware

import (
	"net/http"
	"strings"

	authpkg "github.com/RajaKumar829891/customer-API/auth"
	"github.com/gin-gonic/gin"
)

// RequireSession validates the bearer session JWT and places the caller's
// identity into the gin context. Failures answer HTTP 200 with the
// uniform error body, matching the rest of the API contract.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"status": "error", "message": "Authentication required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := authpkg.ParseAndValidate(secret, tokenString)
		if err != nil || claims.CustomerID == 0 {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"status": "error", "message": "Authentication required"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("customer_id", claims.CustomerID)
		c.Set("customer_name", claims.CustomerName)
		c.Next()
	}
}
