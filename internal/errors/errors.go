// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates the movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrStaleMove indicates a validated move whose board changed before it was applied.
	ErrStaleMove = errors.New("stale move")

	// ErrForeignMove indicates a validated move applied to a board it was not validated on.
	ErrForeignMove = errors.New("move validated on a different board")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name or coordinate outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the squares involved and the
// rule that rejected the move. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Origin square name (if known)
	To     string // Destination square name (if known)
	Side   string // Side that attempted the move (if known)
	Reason string // Why the move was rejected (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Side != "" {
		parts = append(parts, e.Side)
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with position context.
// It's used for FEN and square parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
