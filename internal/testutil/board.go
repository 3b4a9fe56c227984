package testutil

import (
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
)

// NewTestBoard returns an empty board holding the given pieces, keyed by
// algebraic square ("e4"). It calls t.Fatal on a bad square.
func NewTestBoard(t *testing.T, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for name, piece := range pieces {
		b.Set(MustParseSquare(t, name), piece)
	}
	return b
}

// MustParseSquare parses algebraic notation or calls t.Fatal.
func MustParseSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

// MustParseMove parses long algebraic notation or calls t.Fatal.
func MustParseMove(t *testing.T, s string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

// SquareNames converts squares to algebraic notation for comparison.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	return names
}
