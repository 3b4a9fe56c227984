package chess

// isPathClear checks that every square strictly between the move's
// endpoints is empty. The move must be a non-null straight or diagonal
// line, which is all a sliding piece can produce.
func (b *Board) isPathClear(m Move) bool {
	df, dr := m.Signed()
	fileDir := sign(df)
	rankDir := sign(dr)

	file := m.From.File() + fileDir
	rank := m.From.Rank() + rankDir

	for file != m.To.File() || rank != m.To.Rank() {
		if b.squares[file+BoardSize*rank] != nil {
			return false
		}
		file += fileDir
		rank += rankDir
	}

	return true
}
