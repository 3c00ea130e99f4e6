package routes

import (
	"vikasit-jharkhand-be/controllers"
	"vikasit-jharkhand-be/middlewares"

	"github.com/gin-gonic/gin"
)

// VendorRoutes sets up the vendor routes. Vendors are an admin concern.
func VendorRoutes(r *gin.Engine) {
	vendor := r.Group("/api/vendor", middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		vendor.POST("/create", controllers.CreateVendor)
		vendor.GET("/", controllers.GetAllVendors)
		vendor.GET("/match", controllers.MatchVendors)
		vendor.GET("/:id", controllers.GetVendor)
		vendor.PUT("/:id", controllers.UpdateVendor)
		vendor.PUT("/:id/verify", controllers.VerifyVendor)
		vendor.DELETE("/:id", controllers.DeleteVendor)
	}
}
