package middlewares

import (
	"net/http"

	"vikasit-jharkhand-be/models"

	"github.com/gin-gonic/gin"
)

// AdminOnly rejects requests whose token does not carry the admin role.
// Must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get("role")
		role, ok := roleVal.(string)
		if !ok || models.UserRole(role) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
