// Package chess provides the board model and the move legality rules:
// squares, moves, sides, piece kinds and a Board that decides whether a
// move is geometrically legal for the piece standing on its origin.
//
// Turn order, check, castling, en passant and promotion are left to the
// caller.
package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Side represents the owner of a piece.
type Side int

const (
	Black Side = iota
	White
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the pawn direction in ranks).
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// PawnRank returns the 0-based rank on which the side's pawns start.
func (s Side) PawnRank() int {
	if s == White {
		return 1
	}
	return BoardSize - 2
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

var kindLetters = [NumKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the upper case letter for a kind.
func (k Kind) Letter() byte {
	if k >= 0 && k < NumKinds {
		return kindLetters[k]
	}
	return '?'
}

// Piece is a kind owned by a side. Moved records whether the piece has
// left its starting square; only the pawn double step reads it.
type Piece struct {
	Kind  Kind
	Side  Side
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, side Side) Piece {
	return Piece{Kind: kind, Side: side}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// Letter returns the FEN letter for the piece: upper case for White,
// lower case for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Side == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// Placed returns p as found standing on sq: a pawn off its side's
// starting rank has already moved and loses the double step.
func (p Piece) Placed(sq Square) Piece {
	if p.Kind == Pawn && sq.Rank() != p.Side.PawnRank() {
		p.Moved = true
	}
	return p
}

// String returns a description such as "White Knight".
func (p Piece) String() string {
	return p.Side.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter to an unmoved piece.
func PieceFromLetter(c byte) (Piece, error) {
	side := White
	if unicode.IsLower(rune(c)) {
		side = Black
	}
	upper := byte(unicode.ToUpper(rune(c)))
	for kind := Pawn; kind < NumKinds; kind++ {
		if kindLetters[kind] == upper {
			return NewPiece(kind, side), nil
		}
	}
	return Piece{}, &errors.ParseError{
		Err:   errors.ErrInvalidPiece,
		Input: string(c),
		Got:   fmt.Sprintf("%q", c),
	}
}
