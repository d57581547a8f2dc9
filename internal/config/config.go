// Package config provides configuration for the rules engine and its command-line probe.
package config

import (
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Rules selects the rule variant the engine enforces.
	Rules *RuleConfig

	// Output controls how probe reports are written.
	Output *OutputConfig
}

// NewConfig creates a new Config with default values: the baseline rule
// set and text output to stdout.
func NewConfig() *Config {
	return &Config{
		Rules:  NewRuleConfig(),
		Output: NewOutputConfig(),
	}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Rules == nil {
		return fmt.Errorf("missing rule configuration: %w", errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("missing output configuration: %w", errors.ErrInvalidConfig)
	}
	return c.Output.Validate()
}

// defaultWriter is where reports go unless configured otherwise.
var defaultWriter = os.Stdout
