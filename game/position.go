// Package game holds the position model for the laser-king game: the board,
// the cached per-color bitmaps, and the bookkeeping that links a position to
// the one it was derived from.
package game

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/move"
)

const (
	// MaxNumMoves bounds a move list; the real maximum is 7*(8+3) + 1*(8+4).
	MaxNumMoves    = 128
	MaxPlyInSearch = 100
	MaxPlyInGame   = 4096
)

var ErrInconsistent = errors.New("inconsistent position")

// Position is a snapshot of the game. Evaluation treats it as read-only
// except for the laser cache, which can always be recomputed from the board.
type Position struct {
	board   board.Board
	history *Position
	key     uint64
	ply     int

	lastMove move.Move
	victims  Victims

	kloc     [2]board.Square
	pawnMask [2]uint64

	// laser cache, written by the laser package.
	laser  [2]uint64
	killed [2]bool
}

// FromBoard builds a position from a board, deriving the King squares and
// pawn masks. The board must hold exactly one King per color.
func FromBoard(b board.Board, ply int) (*Position, error) {
	if ply < 0 {
		return nil, fmt.Errorf("%w: negative ply %d", ErrInconsistent, ply)
	}
	p := &Position{board: b, ply: ply}
	for _, c := range []board.Color{board.White, board.Black} {
		if n := b.Count(c, board.King); n != 1 {
			return nil, fmt.Errorf("%w: %v has %d kings", ErrInconsistent, c, n)
		}
		sq, _ := b.FindKing(c)
		p.kloc[c] = sq
		p.pawnMask[c] = p.PawnBitmap(c)
	}
	return p, nil
}

// Next derives the position produced by playing m from p. The caller has
// already applied the move to b and counted its victims.
func (p *Position) Next(b board.Board, m move.Move, victims Victims) (*Position, error) {
	n, err := FromBoard(b, p.ply+1)
	if err != nil {
		return nil, err
	}
	n.history = p
	n.lastMove = m
	n.victims = victims
	return n, nil
}

func (p *Position) Board() *board.Board {
	return &p.board
}

func (p *Position) At(sq board.Square) board.Piece {
	return p.board[sq]
}

func (p *Position) Ply() int {
	return p.ply
}

// SideToMove is White on even plies and Black on odd ones.
func (p *Position) SideToMove() board.Color {
	return board.Color(p.ply & 1)
}

func (p *Position) History() *Position {
	return p.history
}

func (p *Position) Key() uint64 {
	return p.key
}

func (p *Position) SetKey(k uint64) {
	p.key = k
}

func (p *Position) LastMove() move.Move {
	return p.lastMove
}

func (p *Position) Victims() Victims {
	return p.victims
}

// KingSquare returns the recorded square of c's King.
func (p *Position) KingSquare(c board.Color) board.Square {
	return p.kloc[c]
}

// King returns the piece on c's recorded King square.
func (p *Position) King(c board.Color) board.Piece {
	return p.board[p.kloc[c]]
}

// PawnMask returns the cached pawn occupancy of c.
func (p *Position) PawnMask(c board.Color) uint64 {
	return p.pawnMask[c]
}

// PawnBitmap recomputes c's pawn occupancy from the board. It must always
// equal PawnMask.
func (p *Position) PawnBitmap(c board.Color) uint64 {
	var mask uint64
	for f := 0; f < board.BoardWidth; f++ {
		for r := 0; r < board.BoardWidth; r++ {
			sq := board.SquareOf(f, r)
			pc := p.board[sq]
			if pc.Type() == board.Pawn && pc.Color() == c {
				mask |= sq.Bit()
			}
		}
	}
	return mask
}

// Laser returns the beam path last computed for c.
func (p *Position) Laser(c board.Color) uint64 {
	return p.laser[c]
}

// Killed reports whether c's last computed beam ended by removing a piece.
func (p *Position) Killed(c board.Color) bool {
	return p.killed[c]
}

// SetLaser stores a computed beam for c.
func (p *Position) SetLaser(c board.Color, path uint64, killed bool) {
	p.laser[c] = path
	p.killed[c] = killed
}

// Copy returns a detached copy sharing only the history link.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// Validate checks the data-model invariants and returns the first one that
// does not hold.
func (p *Position) Validate() error {
	for i := range p.board {
		sq := board.Square(i)
		if !sq.OnBoard() && p.board[i].Type() != board.Invalid {
			return fmt.Errorf("%w: sentinel at %d overwritten with %v", ErrInconsistent, i, p.board[i])
		}
		if sq.OnBoard() && p.board[i].Type() == board.Invalid {
			return fmt.Errorf("%w: invalid piece on %v", ErrInconsistent, sq)
		}
	}
	for _, c := range []board.Color{board.White, board.Black} {
		if n := p.board.Count(c, board.King); n != 1 {
			return fmt.Errorf("%w: %v has %d kings", ErrInconsistent, c, n)
		}
		k := p.King(c)
		if k.Type() != board.King || k.Color() != c {
			return fmt.Errorf("%w: %v king not on recorded square %v (found %v)",
				ErrInconsistent, c, p.kloc[c], k)
		}
		if got := p.PawnBitmap(c); got != p.pawnMask[c] {
			return fmt.Errorf("%w: %v pawn mask %#x, board has %#x",
				ErrInconsistent, c, p.pawnMask[c], got)
		}
	}
	return nil
}

// Material returns the number of pawns c has on the board.
func (p *Position) Material(c board.Color) int {
	return bits.OnesCount64(p.pawnMask[c])
}

func (p *Position) String() string {
	return fmt.Sprintf("%v%v to move, ply %d\n", p.board.String(), p.SideToMove(), p.ply)
}
