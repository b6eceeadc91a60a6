package config

import (
	"io"
	"os"

	"github.com/lgbarn/variantkit-go/internal/errors"
)

// Report formats.
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	// Format is "text" for one line per report or "json" for one object
	// per line.
	Format string `mapstructure:"format"`

	// Writer receives the reports. It is never read from a file.
	Writer io.Writer `mapstructure:"-"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: TextFormat,
		Writer: os.Stdout,
	}
}

// Validate checks the format name.
func (c *OutputConfig) Validate() error {
	if c.Format != TextFormat && c.Format != JSONFormat {
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %q", c.Format)
	}
	return nil
}

// JSON reports whether reports are written as JSON.
func (c *OutputConfig) JSON() bool {
	return c.Format == JSONFormat
}
