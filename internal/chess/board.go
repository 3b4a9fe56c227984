package chess

// Board is an 8x8 grid of optional pieces indexed by Square.Index.
// The board owns its pieces: Set stores a copy and Get hands one back.
//
// A Board is not safe for concurrent use; queries only read it, so any
// number of queries may run while nothing writes.
type Board struct {
	squares [NumSquares]*Piece
}

// Placement pairs an occupied square with its piece.
type Placement struct {
	Square Square
	Piece  Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [NumSquares]*Piece{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.Set(Square{file: uint8(file), rank: 0}, W(kind))
		b.Set(Square{file: uint8(file), rank: uint8(White.PawnRank())}, W(Pawn))
		b.Set(Square{file: uint8(file), rank: uint8(Black.PawnRank())}, B(Pawn))
		b.Set(Square{file: uint8(file), rank: BoardSize - 1}, B(kind))
	}
}

// Get returns the piece on sq and whether there is one.
func (b *Board) Get(sq Square) (Piece, bool) {
	p := b.squares[sq.Index()]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// Set places a piece on sq, replacing whatever was there.
func (b *Board) Set(sq Square, piece Piece) {
	b.squares[sq.Index()] = &piece
}

// Remove empties sq.
func (b *Board) Remove(sq Square) {
	b.squares[sq.Index()] = nil
}

// IsOccupied returns true if a piece stands on sq.
func (b *Board) IsOccupied(sq Square) bool {
	return b.squares[sq.Index()] != nil
}

// MarkMoved records that the piece on sq has moved. It reports false if
// sq is empty. The legality rules never call it.
func (b *Board) MarkMoved(sq Square) bool {
	p := b.squares[sq.Index()]
	if p == nil {
		return false
	}
	p.Moved = true
	return true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	c := NewBoard()
	for i, p := range b.squares {
		if p != nil {
			piece := *p
			c.squares[i] = &piece
		}
	}
	return c
}

// Pieces returns every occupied square in index order (a1, b1, ..., h8).
func (b *Board) Pieces() []Placement {
	var placements []Placement
	for i, p := range b.squares {
		if p == nil {
			continue
		}
		placements = append(placements, Placement{
			Square: Square{file: uint8(i % BoardSize), rank: uint8(i / BoardSize)},
			Piece:  *p,
		})
	}
	return placements
}

// IsMovePossible reports whether the piece on the move's origin may move
// to its destination:
//   - the origin holds a piece and the move is not null,
//   - the move has a shape the piece can make,
//   - sliding pieces find every square in between empty,
//   - the destination is empty or holds a piece of the other side.
//
// It never modifies the board.
func (b *Board) IsMovePossible(m Move) bool {
	mover, ok := b.Get(m.From)
	if !ok || m.IsNull() {
		return false
	}

	possible, clearPath := mover.CanMoveTo(b, m)
	if !possible {
		return false
	}

	if clearPath && !b.isPathClear(m) {
		return false
	}

	target, occupied := b.Get(m.To)
	if !occupied {
		return true
	}
	return target.Side != mover.Side
}

// Destinations returns every square the piece on from may move to, in
// index order. It is empty when from is empty.
func (b *Board) Destinations(from Square) []Square {
	var squares []Square
	for i := 0; i < NumSquares; i++ {
		to := Square{file: uint8(i % BoardSize), rank: uint8(i / BoardSize)}
		if b.IsMovePossible(NewMove(from, to)) {
			squares = append(squares, to)
		}
	}
	return squares
}
