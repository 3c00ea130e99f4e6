package routes

import (
	"vikasit-jharkhand-be/controllers"
	"vikasit-jharkhand-be/middlewares"

	"github.com/gin-gonic/gin"
)

// UploadRoutes sets up the image upload route and static serving of uploads
func UploadRoutes(r *gin.Engine, uploadDir string) {
	r.POST("/api/upload", middlewares.AuthMiddleware(), controllers.UploadImage(uploadDir))
	r.Static("/uploads", uploadDir)
}
