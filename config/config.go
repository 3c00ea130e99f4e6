package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds the server-level settings loaded from the environment.
// Connection settings for Mongo and Redis are read by the connectors
// themselves; MongoURI appears here only so a missing value fails startup.
type AppConfig struct {
	Port           string
	MongoURI       string
	LogLevel       string
	UploadDir      string
	IssueDayLimit  int
	AllowedOrigins []string
}

// Load reads the .env file (if present) and the environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		IssueDayLimit: getEnvAsInt("ISSUE_DAY_LIMIT", 5),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is required")
	}

	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
