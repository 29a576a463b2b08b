package ecommerce

import "fmt"

// MagentoConfig holds client-side settings for the Magento REST API.
// Credentials come from the channel; this config only carries transport
// tuning shared by all channels.
type MagentoConfig struct {
	TimeoutSeconds int
}

// DefaultMagentoConfig returns a config with sensible defaults
func DefaultMagentoConfig() *MagentoConfig {
	return &MagentoConfig{TimeoutSeconds: 30}
}

// Validate checks the configuration
func (c *MagentoConfig) Validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("magento: timeout must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}
