package routes

import (
	"vikasit-jharkhand-be/controllers"
	"vikasit-jharkhand-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, issueDayLimit int) {
	issue := r.Group("/api/issue")
	{
		issue.GET("/", controllers.GetAllIssues)
		issue.GET("/recent", controllers.RecentIssues)
		issue.GET("/mine", middlewares.AuthMiddleware(), controllers.GetIssuesByUser)
		issue.GET("/analytics", middlewares.AuthMiddleware(), middlewares.AdminOnly(), controllers.GetIssueAnalytics)
		issue.POST("/create", middlewares.AuthMiddleware(), middlewares.IssueRateLimiter(issueDayLimit), controllers.CreateIssue)
		issue.GET("/:id", controllers.GetIssue)
		issue.PUT("/:id", middlewares.AuthMiddleware(), controllers.UpdateIssue)
		issue.PUT("/:id/status", middlewares.AuthMiddleware(), middlewares.AdminOnly(), controllers.UpdateIssueStatus)
		issue.PUT("/:id/assign", middlewares.AuthMiddleware(), middlewares.AdminOnly(), controllers.AssignVendor)
		issue.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteIssue)
	}
}
