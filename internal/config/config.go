package config

import (
	"fmt"
	"os"
)

const defaultSerperURL = "https://google.serper.dev/search"

type Config struct {
	DatabaseURL  string
	SerperAPIKey string
	SerperURL    string

	// ModelID selects the locally served generation model. Empty means
	// the AI analysis step is disabled and its placeholder is stored.
	ModelID string

	UploadDir string
	Port      string
}

// Load reads configuration from the environment. DATABASE_URL and
// SERPER_API_KEY are required; missing either is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SerperAPIKey: os.Getenv("SERPER_API_KEY"),
		SerperURL:    getenvDefault("SERPER_URL", defaultSerperURL),
		ModelID:      os.Getenv("MODEL_ID"),
		UploadDir:    getenvDefault("UPLOAD_DIR", "uploads"),
		Port:         getenvDefault("PORT", "3000"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.SerperAPIKey == "" {
		return nil, fmt.Errorf("SERPER_API_KEY is not set")
	}
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
