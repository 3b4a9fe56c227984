package chess

// CanMoveTo reports whether the move has a shape this piece can make,
// assuming the piece stands on the move's origin. clearPath tells the
// board that every square strictly between origin and destination must be
// empty. Ownership of the destination is not considered here.
func (p Piece) CanMoveTo(board *Board, m Move) (possible, clearPath bool) {
	dx, dy := m.Deltas()

	switch p.Kind {
	case Knight:
		return (dx == 2 && dy == 1) || (dx == 1 && dy == 2), false

	case King:
		return dx <= 1 && dy <= 1, false

	case Rook:
		return dx == 0 || dy == 0, true

	case Bishop:
		return dx == dy, true

	case Queen:
		return dx == 0 || dy == 0 || dx == dy, true

	case Pawn:
		return p.canPawnMoveTo(board, m), false
	}

	return false, false
}

// canPawnMoveTo handles pawn pushes and captures. Pawns settle their own
// occupancy rules so the board never walks a pawn path.
func (p Piece) canPawnMoveTo(board *Board, m Move) bool {
	df, dr := m.Signed()

	distance := dr * p.Side.Forward()
	if distance <= 0 {
		return false
	}

	occupied := board.IsOccupied(m.To)

	switch {
	case df == 0 && !occupied:
		switch distance {
		case 1:
			return true
		case 2:
			skipped := Square{file: m.From.file, rank: uint8(m.From.Rank() + p.Side.Forward())}
			return !p.Moved && !board.IsOccupied(skipped)
		}
		return false

	case abs(df) == 1 && occupied && distance == 1:
		return true
	}

	// En passant is not supported.
	return false
}
