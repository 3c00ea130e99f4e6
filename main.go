package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vikasit-jharkhand-be/config"
	"vikasit-jharkhand-be/models"
	"vikasit-jharkhand-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Log.Fatalf("Failed to load config: %v", err)
	}
	config.SetLogLevel(cfg.LogLevel)

	db := config.ConnectDB()
	if db == nil {
		config.Log.Fatal("Failed to connect to MongoDB")
	}
	config.ConnectRedis()

	if err := models.EnsureUserIndex(config.GetCollection("users")); err != nil {
		config.Log.WithError(err).Warn("Failed to ensure user index")
	}
	if err := models.EnsureIssueIndexes(config.GetCollection("issues")); err != nil {
		config.Log.WithError(err).Warn("Failed to ensure issue indexes")
	}
	if err := models.EnsureVendorIndex(config.GetCollection("vendors")); err != nil {
		config.Log.WithError(err).Warn("Failed to ensure vendor index")
	}
	if err := models.EnsureNotificationIndex(config.GetCollection("notifications")); err != nil {
		config.Log.WithError(err).Warn("Failed to ensure notification index")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.AuthRoutes(r)
	routes.UserRoutes(r)
	routes.IssueRoutes(r, cfg.IssueDayLimit)
	routes.VendorRoutes(r)
	routes.NotificationRoutes(r)
	routes.UploadRoutes(r, cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Log.Fatalf("Failed to start server: %v", err)
		}
	}()
	config.Log.Infof("HTTP server started on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	config.Log.Info("Server gracefully stopped")
}
