// Package errors provides sentinel errors and error types for movecheck.
// It defines the few failure conditions that exist outside the legality
// predicate, which itself never fails, and a structured parse error that
// preserves context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates a file or rank outside 0-7.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidSquare indicates text that does not name a square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates text that does not name a move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPiece indicates an unknown piece letter.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidFEN indicates a malformed FEN placement.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCommand indicates a shell command that is not recognised.
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseError represents a failure to parse a piece of notation.
// Column is 1-based and refers to Input; zero means the position is unknown.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
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
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
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
