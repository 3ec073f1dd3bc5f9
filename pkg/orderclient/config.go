package orderclient

import "time"

// Config represents the configuration for the order submission client
type Config struct {
	// BaseURL is the storefront backend base URL
	BaseURL string

	// Timeout bounds each submission request. Zero selects the default.
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	return nil
}
