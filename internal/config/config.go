// Package config loads variantkit settings from a YAML file, VARIANTKIT_*
// environment variables and command line overrides.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/variantkit-go/internal/errors"
	"github.com/lgbarn/variantkit-go/internal/logging"
	"github.com/lgbarn/variantkit-go/internal/notation"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

// Config holds all program configuration.
type Config struct {
	Variant  string `mapstructure:"variant"`
	Notation string `mapstructure:"notation"`

	// Workers is the number of validation goroutines; 0 selects one per CPU.
	Workers int `mapstructure:"workers"`

	Dedupe DuplicateConfig `mapstructure:"dedupe"`
	Output OutputConfig    `mapstructure:"output"`
	Log    LogConfig       `mapstructure:"log"`
}

// LogConfig selects the level and format of the diagnostic log.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Variant:  "chess",
		Notation: notation.DefaultNotation.String(),
		Dedupe:   *NewDuplicateConfig(),
		Output:   *NewOutputConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault("variant", d.Variant)
	v.SetDefault("notation", d.Notation)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("dedupe.enabled", d.Dedupe.Enabled)
	v.SetDefault("dedupe.capacity", d.Dedupe.Capacity)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load reads the configuration. An empty path searches for variantkit.yaml
// in the working directory and ./config; a missing file there is not an
// error. Environment variables such as VARIANTKIT_LOG_LEVEL override the
// file.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("variantkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("VARIANTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "read config: %v", err)
		}
	}

	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decode config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and reports the first invalid one.
func (c *Config) Validate() error {
	if _, err := variant.Get(c.Variant); err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	if _, err := notation.Parse(c.Notation); err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	if c.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if err := c.Dedupe.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log format %q", c.Log.Format)
	}
	return nil
}

// NumWorkers resolves Workers, mapping 0 to the number of CPUs.
func (c *Config) NumWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// VariantDescriptor returns the configured built-in variant.
func (c *Config) VariantDescriptor() (*variant.Variant, error) {
	return variant.Get(c.Variant)
}

// NotationStyle returns the configured notation.
func (c *Config) NotationStyle() (notation.Notation, error) {
	return notation.Parse(c.Notation)
}
