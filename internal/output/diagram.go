package output

import (
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
)

// Diagram draws board as text, rank 8 at the top, White in upper case and
// '.' for empty squares.
func Diagram(board *chess.Board) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(chess.RankBase + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			if p, ok := board.Get(chess.MustSquare(file, rank)); ok {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(" ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(chess.FileBase + file))
	}
	sb.WriteByte('\n')

	return sb.String()
}
