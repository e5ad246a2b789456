// File: middleware/adminAuth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rentaldesk/utils"
)

// JWTAuthAdminMiddleware guards back-office endpoints. It requires a valid,
// unrevoked admin token and stores the admin's ID on the context.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil || claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		if utils.IsTokenRevoked(c.Request.Context(), utils.HashToken(tokenString)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("adminID", claims.Subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}
