package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment    string
	Port           string
	AllowedOrigins []string
	Playground     bool
	SeedData       bool
	ServiceName    string
	Version        string
}

// Load loads configuration from environment variables. Outside production it
// first attempts to load a .env file; a missing file is not an error because
// production relies on system environment variables.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		ServiceName: "event-manager",
		Version:     "0.1.0",
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	cfg.AllowedOrigins = strings.Split(origins, ",")

	// Playground and seed data default to on in development, off in
	// production, with explicit env overrides either way.
	devDefaults := env != "production"
	cfg.Playground = boolEnv("GRAPHQL_PLAYGROUND", devDefaults)
	cfg.SeedData = boolEnv("SEED_DATA", devDefaults)

	return cfg, nil
}

func boolEnv(name string, fallback bool) bool {
	switch os.Getenv(name) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return fallback
	}
}
