package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Writer receives the reports.
	Writer io.Writer

	// JSONFormat enables JSON output instead of plain text
	JSONFormat bool

	// ListDestinations adds every legal destination of the origin square
	ListDestinations bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Writer: defaultWriter,
	}
}

// Validate reports an error if the output settings cannot be used.
func (c *OutputConfig) Validate() error {
	if c.Writer == nil {
		return fmt.Errorf("output writer is nil: %w", errors.ErrInvalidConfig)
	}
	return nil
}
