// File: middleware/tenantAuth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rentaldesk/utils"
)

// JWTAuthTenantMiddleware guards tenant-portal endpoints. It requires a valid,
// unrevoked tenant token and stores the tenant's ID on the context.
func JWTAuthTenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil || claims.Role != "tenant" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if utils.IsTokenRevoked(c.Request.Context(), utils.HashToken(tokenString)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("tenantID", claims.Subject)
		c.Next()
	}
}
