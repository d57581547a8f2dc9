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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPathBlocking enables or disables path blocking for sliding pieces.
func (b *ConfigBuilder) WithPathBlocking(enabled bool) *ConfigBuilder {
	b.cfg.Rules.PathBlocking = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDestinations enables listing the legal destinations of the origin square.
func (b *ConfigBuilder) WithDestinations(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListDestinations = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}
