package board

import (
	"strings"
)

// Board is the sentinel-bordered grid. The playable 8x8 region sits at
// files and ranks 0-7; every other cell holds InvalidPiece so that a beam
// stepping onto it knows it has left the board.
type Board [ArrSize]Piece

// NewBoard returns an empty board with its sentinel margin in place.
func NewBoard() Board {
	var b Board
	for i := range b {
		if Square(i).OnBoard() {
			b[i] = EmptyPiece
		} else {
			b[i] = InvalidPiece
		}
	}
	return b
}

func (b *Board) At(sq Square) Piece {
	return b[sq]
}

func (b *Board) Set(sq Square, p Piece) {
	b[sq] = p
}

// Clear empties a playable square.
func (b *Board) Clear(sq Square) {
	b[sq] = EmptyPiece
}

// FindKing scans the playable region for the King of color c. ok is false
// if there is none.
func (b *Board) FindKing(c Color) (Square, bool) {
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			sq := SquareOf(f, r)
			p := b[sq]
			if p.Type() == King && p.Color() == c {
				return sq, true
			}
		}
	}
	return 0, false
}

// Count returns how many pieces of type t and color c are on the board.
func (b *Board) Count(c Color, t PieceType) int {
	n := 0
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			p := b[SquareOf(f, r)]
			if p.Type() == t && p.Color() == c {
				n++
			}
		}
	}
	return n
}

// String draws the board with rank 7 on top.
func (b *Board) String() string {
	var sb strings.Builder
	for r := BoardWidth - 1; r >= 0; r-- {
		sb.WriteByte(byte('0' + r))
		sb.WriteByte(' ')
		for f := 0; f < BoardWidth; f++ {
			sb.WriteString(b[SquareOf(f, r)].String())
			if f != BoardWidth-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for f := 0; f < BoardWidth; f++ {
		if f > 0 {
			sb.WriteString("  ")
		}
		sb.WriteByte(byte('a' + f))
	}
	sb.WriteByte('\n')
	return sb.String()
}
