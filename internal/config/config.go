// Package config provides configuration for movecheck.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// OutputFormat selects how query results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // One line per move
	JSON                     // A JSON array of results
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Board setup
	StartFEN   string // FEN or placement to start from; "" means the standard position
	EmptyBoard bool   // Start from a clear board
	MarkMoved  bool   // Flag every loaded piece as having moved

	// Output
	OutputFormat OutputFormat

	// Batch mode
	Workers int // Goroutines answering command-line queries

	// Interactive shell
	Interactive bool
	HistoryFile string // "" keeps no history
	Prompt      string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:    1,
		OutputFormat: Text,
		Workers:      1,
		Prompt:       "movecheck> ",
		OutputFile:   os.Stdout,
		LogFile:      os.Stderr,
	}
}

// Validate rejects contradictory settings.
func (c *Config) Validate() error {
	if c.EmptyBoard && c.StartFEN != "" {
		return fmt.Errorf("-empty and -fen both given: %w", errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("missing output stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
