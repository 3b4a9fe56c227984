// movecheck answers whether chess moves are geometrically possible on a board.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/fen"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movecheck version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, err := loadBoard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading board: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg, board, flag.Args(), os.Stdin))
}

// run dispatches to batch mode when moves are given on the command line,
// to the shell when stdin is a terminal, and otherwise reads commands from
// stdin one per line. It returns the process exit code.
func run(cfg *config.Config, board *chess.Board, args []string, stdin io.Reader) int {
	switch {
	case len(args) > 0:
		return runBatch(cfg, board, args)
	case cfg.Interactive || isTerminal(stdin):
		if err := runShell(cfg, board); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	default:
		return runLines(cfg, board, stdin)
	}
}

// runBatch checks every argument as a move, or lists destinations for an
// argument that names a single square. Arguments are answered by
// cfg.Workers goroutines and written in the order given.
func runBatch(cfg *config.Config, board *chess.Board, args []string) int {
	results := worker.Run(args, cfg.Workers, func(arg string) output.Result {
		return query(board, arg)
	})

	w := output.NewWriter(cfg.OutputFile, cfg)
	exitCode := 0
	legal := 0

	for i, r := range results {
		if r.Error != "" {
			exitCode = 1
		} else if r.Legal {
			legal++
		}
		cfg.Logf(2, "%s: legal=%v", args[i], r.Legal)

		if err := w.WriteResult(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return 1
		}
	}

	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return 1
	}

	cfg.Logf(1, "%d queries, %d possible", len(args), legal)
	return exitCode
}

// query answers a single batch argument. It only reads board.
func query(board *chess.Board, arg string) output.Result {
	if len(arg) == 2 {
		sq, err := chess.ParseSquare(arg)
		if err != nil {
			return output.ErrorResult(arg, err)
		}
		return output.NewDestinationsResult(board, sq)
	}
	m, err := chess.ParseMove(arg)
	if err != nil {
		return output.ErrorResult(arg, err)
	}
	return output.NewResult(board, m)
}

// runLines executes one shell command per input line. Errors are reported
// as results labelled with the line number and do not stop the script.
func runLines(cfg *config.Config, board *chess.Board, r io.Reader) int {
	session := NewSession(cfg, board, cfg.OutputFile)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	failures := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := session.Execute(line)
		if err != nil {
			failures++
			if werr := session.Report(fmt.Sprintf("line %d", lineNum), err); werr != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", werr)
				return 1
			}
		}
		if quit {
			break
		}
	}

	if err := session.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return 1
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}

	cfg.Logf(1, "%d lines, %d errors", lineNum, failures)
	if failures > 0 {
		return 1
	}
	return 0
}

// loadBoard builds the starting board described by cfg.
func loadBoard(cfg *config.Config) (*chess.Board, error) {
	var board *chess.Board
	switch {
	case cfg.EmptyBoard:
		board = chess.NewBoard()
	case cfg.StartFEN != "":
		var err error
		board, err = fen.Parse(cfg.StartFEN)
		if err != nil {
			return nil, err
		}
	default:
		board = chess.NewInitialBoard()
	}

	if cfg.MarkMoved {
		for _, p := range board.Pieces() {
			board.MarkMoved(p.Square)
		}
	}

	cfg.Logf(2, "loaded %d pieces: %s", len(board.Pieces()), fen.Format(board))
	return board, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movecheck [options] [moves or squares...]\n\n")
	fmt.Fprintf(os.Stderr, "Checks whether moves are geometrically possible on a board.\n")
	fmt.Fprintf(os.Stderr, "A move (e2e4) prints whether it is possible; a square (g1) lists\n")
	fmt.Fprintf(os.Stderr, "where its piece may go. With no arguments, commands are read from\n")
	fmt.Fprintf(os.Stderr, "stdin, or an interactive shell starts when stdin is a terminal.\n")
	fmt.Fprintf(os.Stderr, "With -J all results form one JSON array, written when input ends.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s", shellHelp)
}
