package chess

import (
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Move is an ordered pair of squares. Building a Move never checks
// legality; that is the Board's decision.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move from one square to another.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove parses long algebraic notation such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidMove,
			Input:    s,
			Expected: "four characters",
		}
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	return NewMove(from, to), nil
}

// Deltas returns the unsigned file and rank distances of the move.
// Direction is lost; use Signed where it matters.
func (m Move) Deltas() (dx, dy int) {
	df, dr := m.Signed()
	return abs(df), abs(dr)
}

// Signed returns the file and rank differences, destination minus origin.
func (m Move) Signed() (df, dr int) {
	return m.To.File() - m.From.File(), m.To.Rank() - m.From.Rank()
}

// IsNull returns true if the move starts and ends on the same square.
func (m Move) IsNull() bool {
	return m.From == m.To
}

// String returns the move in long algebraic notation (e.g., "b3d5").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
