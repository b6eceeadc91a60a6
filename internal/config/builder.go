package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom starts from a copy of a loaded configuration, so
// command line flags can override file values.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithVariant sets the variant name.
func (b *ConfigBuilder) WithVariant(name string) *ConfigBuilder {
	b.cfg.Variant = name
	return b
}

// WithNotation sets the notation name.
func (b *ConfigBuilder) WithNotation(name string) *ConfigBuilder {
	b.cfg.Notation = name
	return b
}

// WithWorkers sets the number of workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Dedupe.Enabled = enabled
	return b
}

// WithDuplicateCapacity bounds the duplicate table.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Dedupe.Capacity = n
	return b
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}
