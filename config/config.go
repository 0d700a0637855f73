package config

import (
	"os"
	"strconv"
	"time"

	apperrors "github.com/zrxdaly/funda-scraper-web/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// HTTP server configuration
	ListenAddr string

	// Fetcher configuration
	RequestTimeout time.Duration
	RequestDelay   time.Duration

	// Listing source configuration
	ListingDomain string

	// Export configuration
	OutputFilename string

	// Default work addresses, overridable per session
	WorkAddress1 string
	WorkAddress2 string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	requestTimeout, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "10"))
	requestDelay, _ := strconv.Atoi(getEnv("REQUEST_DELAY_SECONDS", "1"))

	return Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		RequestTimeout: time.Duration(requestTimeout) * time.Second,
		RequestDelay:   time.Duration(requestDelay) * time.Second,
		ListingDomain:  getEnv("LISTING_DOMAIN", "funda.nl"),
		OutputFilename: getEnv("OUTPUT_FILENAME", "funda_properties.xlsx"),
		WorkAddress1:   getEnv("WORK_ADDRESS_1", ""),
		WorkAddress2:   getEnv("WORK_ADDRESS_2", ""),
		Environment:    getEnv("FUNDA_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return apperrors.NewConfiguration("listen address must not be empty", nil)
	}
	if c.RequestTimeout <= 0 {
		return apperrors.NewConfiguration("request timeout must be positive", nil)
	}
	if c.RequestDelay < 0 {
		return apperrors.NewConfiguration("request delay must not be negative", nil)
	}
	if c.ListingDomain == "" {
		return apperrors.NewConfiguration("listing domain must not be empty", nil)
	}
	if c.OutputFilename == "" {
		return apperrors.NewConfiguration("output filename must not be empty", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
