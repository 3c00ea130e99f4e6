package middlewares

import (
	"net/http"
	"strings"

	"vikasit-jharkhand-be/config"
	authUtils "vikasit-jharkhand-be/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the JWT from the Authorization header or the
// auth_token cookie and puts user_id and role on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.Request.Header.Get("Authorization")
		if authHeader != "" {
			tokenString = authHeader
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = authHeader[7:]
			}
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		claims, err := authUtils.ParseToken(tokenString)
		if err != nil {
			config.Log.Warnf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
