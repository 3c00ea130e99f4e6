package routes

import (
	"vikasit-jharkhand-be/controllers"
	"vikasit-jharkhand-be/middlewares"

	"github.com/gin-gonic/gin"
)

// NotificationRoutes sets up the notification routes
func NotificationRoutes(r *gin.Engine) {
	notification := r.Group("/api/notification", middlewares.AuthMiddleware())
	{
		notification.GET("/", controllers.GetNotifications)
		notification.PUT("/:id/read", controllers.MarkNotificationRead)
	}
}
