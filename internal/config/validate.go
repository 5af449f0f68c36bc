package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	return nil
}

func (s *StudyConfig) validate() error {
	if s.NewCardsPerDay < 0 {
		return fmt.Errorf("new_cards_per_day must be >= 0 (got %d)", s.NewCardsPerDay)
	}
	if s.MinSessionSize <= 0 {
		return fmt.Errorf("min_session_size must be > 0 (got %d)", s.MinSessionSize)
	}
	if s.MaxSessionSize < s.MinSessionSize {
		return fmt.Errorf("max_session_size must be >= min_session_size (got %d < %d)",
			s.MaxSessionSize, s.MinSessionSize)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

// Location resolves the configured timezone. Validate guarantees the name
// parses, so errors here only happen on an unvalidated config.
func (s *StudyConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
