// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/movecheck-go/internal/config"
)

var (
	// Board setup
	fenFlag    = flag.String("fen", "", "Starting position as FEN or piece placement (default: standard position)")
	emptyBoard = flag.Bool("empty", false, "Start from an empty board")
	markMoved  = flag.Bool("moved", false, "Mark every loaded piece as having moved")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")

	// Batch mode
	workers = flag.Int("j", 1, "Number of goroutines answering command-line queries")

	// Shell
	interactive = flag.Bool("i", false, "Start the interactive shell even when stdin is not a terminal")
	historyFile = flag.String("history", "", "Shell history file (default: no history)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbose   = flag.Bool("v", false, "Report every command")
	quiet     = flag.Bool("q", false, "Report nothing")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *fenFlag
	cfg.EmptyBoard = *emptyBoard
	cfg.MarkMoved = *markMoved

	if *jsonOutput {
		cfg.OutputFormat = config.JSON
	}

	cfg.Workers = *workers

	cfg.Interactive = *interactive
	cfg.HistoryFile = *historyFile

	if *verbose {
		cfg.Verbosity = 2
	}
	if *quiet {
		cfg.Verbosity = 0
	}
}
