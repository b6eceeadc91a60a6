package config

import "github.com/lgbarn/variantkit-go/internal/errors"

// DuplicateConfig holds settings for duplicate position detection during
// batch validation.
type DuplicateConfig struct {
	// Enabled skips FEN lines whose position was already reported.
	Enabled bool `mapstructure:"enabled"`

	// Capacity bounds the number of remembered positions; 0 means no limit.
	Capacity int `mapstructure:"capacity"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks the capacity.
func (c *DuplicateConfig) Validate() error {
	if c.Capacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "dedupe capacity must not be negative, got %d", c.Capacity)
	}
	return nil
}
