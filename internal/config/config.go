package config

import (
	"fmt"
	"os"
	"time"

	"medical-report-analyzer/internal/domain"
)

// Service identity reported by the health endpoints.
const (
	ServiceName    = "Medical Report Analysis API"
	ServiceVersion = "2.0.0"
)

// Fixed pipeline constants. These are deliberate design constants, not
// tunables, so they are not read from the environment.
const (
	// MaxRetries is the number of model attempts before falling back.
	MaxRetries = 3
	// RetryDelay is the fixed pause between model attempts.
	RetryDelay = 2 * time.Second
	// DownloadTimeout bounds the PDF download.
	DownloadTimeout = 30 * time.Second
	// CacheCapacity bounds the analysis cache.
	CacheCapacity = 128
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort   string
	LogLevel     string
	GCPProjectID string
	GCPLocation  string
	ModelName    string
}

// NewConfig creates a new configuration instance from the environment.
// The GCP project is the one required credential: without it the model
// client cannot authenticate, so its absence is a startup error.
func NewConfig() (domain.Config, error) {
	cfg := &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:   getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		GCPProjectID: os.Getenv("GCP_PROJECT_ID"),
		GCPLocation:  getEnvOrDefault("GCP_LOCATION", "us-central1"),
		ModelName:    getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-001"),
	}

	if cfg.GCPProjectID == "" {
		return nil, fmt.Errorf("GCP project ID not found. Please set the GCP_PROJECT_ID environment variable")
	}

	return cfg, nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGCPProjectID returns the GCP project used for Vertex AI
func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

// GetGCPLocation returns the Vertex AI location
func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

// GetModelName returns the generative model identifier
func (c *AppConfig) GetModelName() string {
	return c.ModelName
}

// Helper function for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
