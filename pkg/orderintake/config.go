package orderintake

import "errors"

// Config represents the configuration for the order-intake client.
type Config struct {
	// BaseURL is the order-intake service base URL.
	BaseURL string
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("order-intake base URL is required")
	}
	return nil
}
