package board

// Color is the side owning a piece. White moves on even plies.
type Color uint8

const (
	White Color = iota
	Black
)

// Opp returns the other color.
func (c Color) Opp() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Unknown"
}

// PieceType is the kind of piece sitting on a square. Invalid marks the
// sentinel cells around the playable region.
type PieceType uint8

const (
	Empty PieceType = iota
	Pawn
	King
	Invalid
)

func (t PieceType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Pawn:
		return "pawn"
	case King:
		return "king"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Orientation is a King's facing (NN, EE, SS, WW) or a Pawn's diagonal
// facing (NW, NE, SE, SW). Both sets go clockwise, so rotating a piece is
// the same arithmetic for either type.
type Orientation uint8

// King orientations; also the four beam directions.
const (
	NN Orientation = iota
	EE
	SS
	WW
)

// Pawn orientations.
const (
	NW Orientation = iota
	NE
	SE
	SW
)

const NumOrientations = 4

// Rotate turns the orientation clockwise by quarter turns.
func (o Orientation) Rotate(quarters int) Orientation {
	return Orientation((int(o) + quarters) & (NumOrientations - 1))
}

// Bit layout of a Piece, from the LSB:
//
//	bits 0-1 orientation
//	bits 2-3 piece type
//	bit  4   color
const (
	oriShift   = 0
	oriMask    = NumOrientations - 1
	ptypeShift = 2
	ptypeMask  = 3
	colorShift = 4
	colorMask  = 1

	// PieceSize is the number of bits a Piece uses.
	PieceSize = 5
)

// Piece packs color, type and orientation into a byte.
type Piece uint8

const (
	EmptyPiece   Piece = Piece(Empty) << ptypeShift
	InvalidPiece Piece = Piece(Invalid) << ptypeShift
)

// NewPiece builds a piece from its three fields.
func NewPiece(c Color, t PieceType, o Orientation) Piece {
	return Piece((uint8(c)&colorMask)<<colorShift |
		(uint8(t)&ptypeMask)<<ptypeShift |
		(uint8(o)&oriMask)<<oriShift)
}

func (p Piece) Color() Color {
	return Color((uint8(p) >> colorShift) & colorMask)
}

func (p Piece) Type() PieceType {
	return PieceType((uint8(p) >> ptypeShift) & ptypeMask)
}

func (p Piece) Orientation() Orientation {
	return Orientation((uint8(p) >> oriShift) & oriMask)
}

// WithColor returns p with its color replaced; type and orientation are kept.
func (p Piece) WithColor(c Color) Piece {
	return Piece((uint8(c)&colorMask)<<colorShift | uint8(p)&^(colorMask<<colorShift))
}

// WithType returns p with its type replaced; color and orientation are kept.
func (p Piece) WithType(t PieceType) Piece {
	return Piece((uint8(t)&ptypeMask)<<ptypeShift | uint8(p)&^(ptypeMask<<ptypeShift))
}

// WithOrientation returns p with its orientation replaced; color and type
// are kept.
func (p Piece) WithOrientation(o Orientation) Piece {
	return Piece((uint8(o)&oriMask)<<oriShift | uint8(p)&^(oriMask<<oriShift))
}

var kingCodes = [NumOrientations]string{"NN", "EE", "SS", "WW"}
var pawnCodes = [NumOrientations]string{"NW", "NE", "SE", "SW"}

// String returns the two-letter code of the piece: upper case for White,
// lower case for Black. Empty squares are "--" and sentinels "##".
func (p Piece) String() string {
	var code string
	switch p.Type() {
	case Empty:
		return "--"
	case Invalid:
		return "##"
	case King:
		code = kingCodes[p.Orientation()]
	case Pawn:
		code = pawnCodes[p.Orientation()]
	}
	if p.Color() == Black {
		return string([]byte{code[0] + 'a' - 'A', code[1] + 'a' - 'A'})
	}
	return code
}

// PieceFromCode parses a two-letter piece code as produced by String.
// ok is false for anything that is not a King or Pawn code.
func PieceFromCode(code string) (p Piece, ok bool) {
	if len(code) != 2 {
		return EmptyPiece, false
	}
	c := White
	upper := []byte(code)
	for i, ch := range upper {
		switch {
		case ch >= 'a' && ch <= 'z':
			if i == 0 {
				c = Black
			} else if c != Black {
				return EmptyPiece, false
			}
			upper[i] = ch - 'a' + 'A'
		case ch >= 'A' && ch <= 'Z':
			if c == Black {
				return EmptyPiece, false
			}
		default:
			return EmptyPiece, false
		}
	}
	for o, kc := range kingCodes {
		if kc == string(upper) {
			return NewPiece(c, King, Orientation(o)), true
		}
	}
	for o, pc := range pawnCodes {
		if pc == string(upper) {
			return NewPiece(c, Pawn, Orientation(o)), true
		}
	}
	return EmptyPiece, false
}
