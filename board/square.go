package board

import (
	"fmt"
)

const (
	// BoardWidth is the number of playable files and ranks.
	BoardWidth = 8
	// ArrWidth adds one sentinel cell on each side of the playable region.
	ArrWidth = BoardWidth + 2
	ArrSize  = ArrWidth * ArrWidth
	// FilOrigin and RnkOrigin are the offsets of file 0 and rank 0 in the grid.
	FilOrigin = 1
	RnkOrigin = 1

	NumSquares = BoardWidth * BoardWidth
)

// Square is an index into the sentinel-bordered grid. Files advance by
// ArrWidth and ranks by one, so a square is ArrWidth*(1+file) + 1 + rank.
type Square uint8

// SquareOf returns the grid index for a file and rank. Coordinates outside
// [-1, BoardWidth] do not address the grid and give garbage.
func SquareOf(file, rank int) Square {
	return Square(ArrWidth*(FilOrigin+file) + RnkOrigin + rank)
}

// File returns the file of the square; -1 or BoardWidth on the sentinel margin.
func (sq Square) File() int {
	return int(sq)/ArrWidth - FilOrigin
}

// Rank returns the rank of the square; -1 or BoardWidth on the sentinel margin.
func (sq Square) Rank() int {
	return int(sq)%ArrWidth - RnkOrigin
}

// OnBoard reports whether sq is in the playable 8x8 region.
func (sq Square) OnBoard() bool {
	f, r := sq.File(), sq.Rank()
	return f >= 0 && f < BoardWidth && r >= 0 && r < BoardWidth
}

// Index is the compact bit index file*8 + rank. It is only meaningful for
// playable squares.
func (sq Square) Index() int {
	return sq.File()*BoardWidth + sq.Rank()
}

// Bit returns the square's single bit in a 64-bit occupancy map, or 0 for
// a sentinel.
func (sq Square) Bit() uint64 {
	return bitOf[sq]
}

// SquareFromIndex inverts Index.
func SquareFromIndex(idx int) Square {
	return SquareOf(idx/BoardWidth, idx%BoardWidth)
}

// String renders the square as file letter and rank digit, e.g. "d0".
func (sq Square) String() string {
	if !sq.OnBoard() {
		return fmt.Sprintf("#%d", uint8(sq))
	}
	return string([]byte{byte('a' + sq.File()), byte('0' + sq.Rank())})
}

// ParseSquare reads a square in the form produced by String.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	f := int(s[0]) - 'a'
	r := int(s[1]) - '0'
	if f < 0 || f >= BoardWidth || r < 0 || r >= BoardWidth {
		return 0, fmt.Errorf("square %q is off the board", s)
	}
	return SquareOf(f, r), nil
}
