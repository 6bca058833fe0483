package move

import (
	"errors"
	"fmt"

	"github.com/domino14/leiserchess/board"
)

// Rotation is the quarter-turn component of a move.
type Rotation uint8

const (
	None Rotation = iota
	Right
	UTurn
	Left
)

// Quarters returns the number of clockwise quarter turns.
func (r Rotation) Quarters() int {
	return int(r)
}

var rotationLetters = [4]byte{'-', 'R', 'U', 'L'}

// Move is a 20-bit packed move. It is small enough to store in move lists
// and transposition entries and compares with ==.
//
//	19 18 | 17 16 | 15 ..  8 | 7 .. 0
//	ptype |  rot  |   from   |   to
type Move uint32

const (
	ptypeShift = 18
	ptypeMask  = 3
	rotShift   = 16
	rotMask    = 3
	fromShift  = 8
	fromMask   = 0xFF
	toShift    = 0
	toMask     = 0xFF

	// Mask covers every bit a Move uses.
	Mask = 0xfffff
)

// Null is the zero move. It does not correspond to any legal play.
const Null Move = 0

// Of packs a move. Rotations have from == to.
func Of(pt board.PieceType, rot Rotation, from, to board.Square) Move {
	return Move((uint32(pt)&ptypeMask)<<ptypeShift |
		(uint32(rot)&rotMask)<<rotShift |
		(uint32(from)&fromMask)<<fromShift |
		(uint32(to)&toMask)<<toShift)
}

// Translation builds a move of the piece on from onto to.
func Translation(pt board.PieceType, from, to board.Square) Move {
	return Of(pt, None, from, to)
}

// Rotate builds a move that turns the piece on sq in place.
func Rotate(pt board.PieceType, rot Rotation, sq board.Square) Move {
	return Of(pt, rot, sq, sq)
}

func (m Move) PieceType() board.PieceType {
	return board.PieceType((uint32(m) >> ptypeShift) & ptypeMask)
}

func (m Move) Rotation() Rotation {
	return Rotation((uint32(m) >> rotShift) & rotMask)
}

func (m Move) From() board.Square {
	return board.Square((uint32(m) >> fromShift) & fromMask)
}

func (m Move) To() board.Square {
	return board.Square((uint32(m) >> toShift) & toMask)
}

// WithPieceType returns m with its piece-type hint replaced.
func (m Move) WithPieceType(pt board.PieceType) Move {
	return Of(pt, m.Rotation(), m.From(), m.To())
}

// String renders a translation as <from><to> ("d0e1") and a rotation as
// <from><R|U|L> ("d0R"). The piece-type hint is not part of the text form.
func (m Move) String() string {
	if m == Null {
		return "null"
	}
	if m.Rotation() != None {
		return m.From().String() + string(rotationLetters[m.Rotation()])
	}
	return m.From().String() + m.To().String()
}

var ErrBadMove = errors.New("unparseable move")

// Parse reads a move in the form produced by String. The returned move has
// an Empty piece-type hint; callers with a board fill it in with
// WithPieceType.
func Parse(s string) (Move, error) {
	if s == "null" {
		return Null, nil
	}
	if len(s) != 3 && len(s) != 4 {
		return Null, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	from, err := board.ParseSquare(s[:2])
	if err != nil {
		return Null, fmt.Errorf("%w: %v", ErrBadMove, err)
	}
	if len(s) == 3 {
		for rot := Right; rot <= Left; rot++ {
			if s[2] == rotationLetters[rot] {
				return Rotate(board.Empty, rot, from), nil
			}
		}
		return Null, fmt.Errorf("%w: unknown rotation %q", ErrBadMove, s[2:])
	}
	to, err := board.ParseSquare(s[2:])
	if err != nil {
		return Null, fmt.Errorf("%w: %v", ErrBadMove, err)
	}
	return Translation(board.Empty, from, to), nil
}
