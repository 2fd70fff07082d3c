package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Award.validate(); err != nil {
		return fmt.Errorf("award: %w", err)
	}

	if c.Mail.Port < 1 || c.Mail.Port > 65535 {
		return fmt.Errorf("mail.port must be in 1..65535 (got %d)", c.Mail.Port)
	}

	return nil
}

func (a *AwardConfig) validate() error {
	if a.MinimumWords < 1 {
		return fmt.Errorf("minimum_words must be >= 1 (got %d)", a.MinimumWords)
	}
	if a.MinimumEntries < 1 {
		return fmt.Errorf("minimum_entries must be >= 1 (got %d)", a.MinimumEntries)
	}
	if a.MinimumAttributes < 1 {
		return fmt.Errorf("minimum_attributes must be >= 1 (got %d)", a.MinimumAttributes)
	}
	if a.MinimumAttributes > a.MinimumEntries {
		return fmt.Errorf("minimum_attributes (%d) cannot exceed minimum_entries (%d)", a.MinimumAttributes, a.MinimumEntries)
	}
	return nil
}
