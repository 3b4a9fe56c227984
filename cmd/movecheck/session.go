// session.go - Shell commands operating on one board
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/errors"
	"github.com/lgbarn/movecheck-go/internal/fen"
	"github.com/lgbarn/movecheck-go/internal/output"
)

const shellHelp = `Commands:
  check <move>        is the move possible (a bare move like e2e4 also works)
  moves <square>      list destinations of the piece on square (or a bare square)
  set <square> <P>    place a piece, FEN letter: PNBRQK white, pnbrqk black
                      (a pawn off its starting rank counts as moved)
  clear <square>      empty a square
  moved <square>      mark the piece on square as having moved
  reset               restore the starting board
  empty               remove every piece
  fen [placement]     print the board as FEN, or load one
  show                draw the board
  help                this text
  quit                leave the shell
`

// Session holds the board a shell or script works on. Query results go
// through one ResultWriter for the whole session, so JSON output is a
// single array written by Close.
type Session struct {
	cfg     *config.Config
	board   *chess.Board
	start   *chess.Board
	out     io.Writer // help, show and fen text
	results output.ResultWriter
}

// NewSession creates a session on board writing results to out. reset
// returns to a copy of board. With JSON output, text replies go to the
// log so that out holds only the JSON document.
func NewSession(cfg *config.Config, board *chess.Board, out io.Writer) *Session {
	text := out
	if cfg.OutputFormat == config.JSON {
		text = cfg.LogFile
	}
	return &Session{
		cfg:     cfg,
		board:   board,
		start:   board.Copy(),
		out:     text,
		results: output.NewWriter(out, cfg),
	}
}

// Board returns the session's current board.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Execute runs one command line. quit is true when the session should end.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	s.cfg.Logf(2, "command: %s", strings.Join(fields, " "))

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		_, err = io.WriteString(s.out, shellHelp)
	case "check":
		err = s.needArgs(cmd, args, 1)
		if err == nil {
			err = s.check(args[0])
		}
	case "moves":
		err = s.needArgs(cmd, args, 1)
		if err == nil {
			err = s.moves(args[0])
		}
	case "set":
		err = s.needArgs(cmd, args, 2)
		if err == nil {
			err = s.set(args[0], args[1])
		}
	case "clear", "remove":
		err = s.needArgs(cmd, args, 1)
		if err == nil {
			err = s.clear(args[0])
		}
	case "moved":
		err = s.needArgs(cmd, args, 1)
		if err == nil {
			err = s.markMoved(args[0])
		}
	case "reset":
		s.board = s.start.Copy()
	case "empty":
		s.board.Clear()
	case "fen":
		err = s.fen(args)
	case "show":
		_, err = io.WriteString(s.out, output.Diagram(s.board))
	default:
		switch len(cmd) {
		case 4:
			err = s.check(cmd)
		case 2:
			err = s.moves(cmd)
		default:
			err = fmt.Errorf("%q: %w", fields[0], errors.ErrUnknownCommand)
		}
	}
	return false, err
}

func (s *Session) needArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d: %w", cmd, n, len(args), errors.ErrUnknownCommand)
	}
	return nil
}

// Report records a command that failed, labelled with input.
func (s *Session) Report(input string, err error) error {
	return s.results.WriteResult(output.ErrorResult(input, err))
}

// Close writes any buffered results.
func (s *Session) Close() error {
	return s.results.Close()
}

func (s *Session) check(text string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	return s.results.WriteResult(output.NewResult(s.board, m))
}

func (s *Session) moves(text string) error {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		return err
	}
	return s.results.WriteResult(output.NewDestinationsResult(s.board, sq))
}

func (s *Session) set(square, letter string) error {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return err
	}
	if len(letter) != 1 {
		return fmt.Errorf("piece %q: %w", letter, errors.ErrInvalidPiece)
	}
	piece, err := chess.PieceFromLetter(letter[0])
	if err != nil {
		return err
	}
	s.board.Set(sq, piece.Placed(sq))
	return nil
}

func (s *Session) clear(square string) error {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return err
	}
	s.board.Remove(sq)
	return nil
}

func (s *Session) markMoved(square string) error {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return err
	}
	if !s.board.MarkMoved(sq) {
		return fmt.Errorf("%s is empty: %w", sq, errors.ErrInvalidSquare)
	}
	return nil
}

func (s *Session) fen(args []string) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(s.out, fen.Format(s.board))
		return err
	}
	board, err := fen.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.board = board
	s.cfg.Logf(2, "loaded %d pieces", len(board.Pieces()))
	return nil
}
