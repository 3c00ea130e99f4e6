package routes

import (
	"vikasit-jharkhand-be/controllers"
	"vikasit-jharkhand-be/middlewares"

	"github.com/gin-gonic/gin"
)

// UserRoutes sets up the profile routes
func UserRoutes(r *gin.Engine) {
	user := r.Group("/api/user", middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}
}
