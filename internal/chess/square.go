package chess

import (
	"fmt"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Constants for board dimensions and notation.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square is a (file, rank) pair on the board, both 0-based.
// A Square is only ever built in range, so every Square maps to exactly
// one storage index.
type Square struct {
	file uint8
	rank uint8
}

// NewSquare creates a square from a 0-based file and rank.
// It returns ErrOutOfRange if either is outside 0-7.
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Square{}, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrOutOfRange)
	}
	return Square{file: uint8(file), rank: uint8(rank)}, nil
}

// MustSquare is like NewSquare but panics on an out of range coordinate.
// It is meant for literal coordinates.
func MustSquare(file, rank int) Square {
	sq, err := NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// SquareFromIndex is the inverse of Square.Index.
func SquareFromIndex(index int) (Square, error) {
	if index < 0 || index >= NumSquares {
		return Square{}, fmt.Errorf("index %d: %w", index, errors.ErrOutOfRange)
	}
	return Square{file: uint8(index % BoardSize), rank: uint8(index / BoardSize)}, nil
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "two characters",
		}
	}
	file := int(s[0]) - FileBase
	if file < 0 || file >= BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", s[0]),
		}
	}
	rank := int(s[1]) - RankBase
	if rank < 0 || rank >= BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", s[1]),
		}
	}
	return Square{file: uint8(file), rank: uint8(rank)}, nil
}

// File returns the 0-based file (0 = a).
func (sq Square) File() int {
	return int(sq.file)
}

// Rank returns the 0-based rank (0 = rank 1).
func (sq Square) Rank() int {
	return int(sq.rank)
}

// Index returns file + 8*rank, the square's storage slot.
func (sq Square) Index() int {
	return int(sq.file) + BoardSize*int(sq.rank)
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	return string([]byte{FileBase + sq.file, RankBase + sq.rank})
}
