// Package fen reads and writes the piece placement field of FEN strings.
// Only placement is used; side to move, castling rights, en passant and
// clocks are not part of the board model and are ignored on input.
package fen

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// InitialPlacement is the placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// InitialFEN is the full FEN string for the standard starting position.
const InitialFEN = InitialPlacement + " w KQkq - 0 1"

// Parse creates a board from a FEN string or a bare placement field.
// Pawns found off their starting rank are marked as moved so that they
// lose the double step.
func Parse(s string) (*chess.Board, error) {
	fields := strings.Fields(s)
	if len(fields) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePlacement(board, fields[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePlacement fills board from the placement field, rank 8 first.
func parsePlacement(board *chess.Board, placement string) error {
	rank := chess.BoardSize - 1
	file := 0

	fail := func(i int, expected string, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    placement,
			Column:   i + 1,
			Expected: expected,
			Got:      got,
		}
	}

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fail(i, "8 squares in rank", fmt.Sprintf("%d", file))
			}
			if rank == 0 {
				return fail(i, "8 ranks", "more")
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fail(i, "8 squares in rank", fmt.Sprintf("%d", file))
			}
		default:
			piece, err := chess.PieceFromLetter(c)
			if err != nil {
				return fail(i, "digit 1-8 or piece letter", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fail(i, "8 squares in rank", "more")
			}
			sq := chess.MustSquare(file, rank)
			board.Set(sq, piece.Placed(sq))
			file++
		}
	}

	if rank != 0 {
		return fail(len(placement)-1, "8 ranks", fmt.Sprintf("%d", chess.BoardSize-rank))
	}
	if file != chess.BoardSize {
		return fail(len(placement)-1, "8 squares in rank", fmt.Sprintf("%d", file))
	}
	return nil
}

// Format returns the placement field for board.
func Format(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Get(chess.MustSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
