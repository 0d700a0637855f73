package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, ":8080", config.ListenAddr)
	assert.Equal(t, 10*time.Second, config.RequestTimeout)
	assert.Equal(t, 1*time.Second, config.RequestDelay)
	assert.Equal(t, "funda.nl", config.ListingDomain)
	assert.Equal(t, "funda_properties.xlsx", config.OutputFilename)

	// Test with environment variables
	os.Setenv("LISTEN_ADDR", "127.0.0.1:9090")
	os.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	os.Setenv("REQUEST_DELAY_SECONDS", "2")
	os.Setenv("LISTING_DOMAIN", "example.nl")
	os.Setenv("OUTPUT_FILENAME", "houses.xlsx")
	os.Setenv("WORK_ADDRESS_1", "Amsterdam Centraal")

	config = LoadConfig()
	assert.Equal(t, "127.0.0.1:9090", config.ListenAddr)
	assert.Equal(t, 5*time.Second, config.RequestTimeout)
	assert.Equal(t, 2*time.Second, config.RequestDelay)
	assert.Equal(t, "example.nl", config.ListingDomain)
	assert.Equal(t, "houses.xlsx", config.OutputFilename)
	assert.Equal(t, "Amsterdam Centraal", config.WorkAddress1)

	// Clean up
	os.Unsetenv("LISTEN_ADDR")
	os.Unsetenv("REQUEST_TIMEOUT_SECONDS")
	os.Unsetenv("REQUEST_DELAY_SECONDS")
	os.Unsetenv("LISTING_DOMAIN")
	os.Unsetenv("OUTPUT_FILENAME")
	os.Unsetenv("WORK_ADDRESS_1")
}

func TestValidate(t *testing.T) {
	config := LoadConfig()
	assert.NoError(t, config.Validate())

	config.ListenAddr = ""
	assert.Error(t, config.Validate())

	config = LoadConfig()
	config.RequestTimeout = 0
	assert.Error(t, config.Validate())

	config = LoadConfig()
	config.RequestDelay = -1 * time.Second
	assert.Error(t, config.Validate())

	config = LoadConfig()
	config.ListingDomain = ""
	assert.Error(t, config.Validate())
}
