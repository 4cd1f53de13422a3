package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Payment.AccessToken == "" {
		return fmt.Errorf("payment.access_token is required")
	}
	if len(c.Payment.WebhookSecret) < 16 {
		return fmt.Errorf("payment.webhook_secret must be at least 16 characters (got %d)", len(c.Payment.WebhookSecret))
	}

	if c.Shop.MaxDraftsPerUser <= 0 {
		return fmt.Errorf("shop.max_drafts_per_user must be > 0 (got %d)", c.Shop.MaxDraftsPerUser)
	}
	if c.Shop.MaxCartQuantity <= 0 {
		return fmt.Errorf("shop.max_cart_quantity must be > 0 (got %d)", c.Shop.MaxCartQuantity)
	}
	if len(c.Shop.Currency) != 3 {
		return fmt.Errorf("shop.currency must be a 3-letter ISO code (got %q)", c.Shop.Currency)
	}

	return nil
}
