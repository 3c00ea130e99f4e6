package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"vikasit-jharkhand-be/config"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

const maxUploadBytes = 5 << 20

// UploadImage stores an issue photo under uploadDir and returns its public
// URL. The same directory is served statically at /uploads.
func UploadImage(uploadDir string) gin.HandlerFunc {
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		if file.Size > maxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the size limit"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only jpg, png and webp images are allowed"})
			return
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			config.Log.WithError(err).Error("Failed to create upload directory")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}

		name, err := randomFileName(ext)
		if err != nil {
			config.Log.WithError(err).Error("Failed to generate file name")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}

		dst := filepath.Join(uploadDir, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			config.Log.WithError(err).Error("Failed to save uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"imageUrl": "/uploads/" + name,
		})
	}
}

func randomFileName(ext string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + ext, nil
}
