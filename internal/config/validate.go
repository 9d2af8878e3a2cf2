package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.TxTimeout <= 0 {
		return fmt.Errorf("database.tx_timeout must be > 0 (got %v)", c.Database.TxTimeout)
	}

	if c.Reward.DispatchTimeout <= 0 {
		return fmt.Errorf("reward.dispatch_timeout must be > 0 (got %v)", c.Reward.DispatchTimeout)
	}

	// Reward dispatch runs outside the verification transaction; its timeout
	// must stay strictly below the transaction timeout so a slow treasury can
	// never be the thing holding a transaction-sized window open.
	if c.Reward.DispatchTimeout >= c.Database.TxTimeout {
		return fmt.Errorf("reward.dispatch_timeout (%v) must be shorter than database.tx_timeout (%v)",
			c.Reward.DispatchTimeout, c.Database.TxTimeout)
	}

	if c.Worker.ExpiryInterval <= 0 {
		return fmt.Errorf("worker.expiry_interval must be > 0 (got %v)", c.Worker.ExpiryInterval)
	}

	if err := c.ObjectStore.validate(); err != nil {
		return fmt.Errorf("object_store: %w", err)
	}

	return nil
}

// validate rejects a partially configured object store: either all connection
// fields are set or none are.
func (c *ObjectStoreConfig) validate() error {
	if c.Endpoint == "" && c.Bucket == "" && c.PublicBaseURL == "" {
		return nil
	}
	if c.Endpoint == "" || c.Bucket == "" || c.PublicBaseURL == "" {
		return fmt.Errorf("endpoint, bucket and public_base_url must all be set to enable uploads")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", c.MaxUploadBytes)
	}
	return nil
}
