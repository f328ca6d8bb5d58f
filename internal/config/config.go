// Package config loads console configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything the console needs to reach the backend.
type Config struct {
	// APIURL is the backend base URL, including the API prefix.
	APIURL string `env:"STORE_ADMIN_API_URL,default=http://localhost:8080/api"`

	// Timeout bounds each HTTP round trip.
	Timeout time.Duration `env:"STORE_ADMIN_HTTP_TIMEOUT,default=30s"`

	// Debug enables request-level logging.
	Debug bool `env:"STORE_ADMIN_DEBUG,default=false"`
}

// Load reads an optional .env file, then decodes the environment. An
// explicit envFile must exist; the implicit ./.env may be absent.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
