package game

import (
	"fmt"

	"github.com/domino14/leiserchess/board"
)

// Builder places pieces one at a time and then produces a Position.
// Errors are collected and reported by Build.
type Builder struct {
	b   board.Board
	ply int
	err error
}

func NewBuilder() *Builder {
	return &Builder{b: board.NewBoard()}
}

func (bd *Builder) place(sq board.Square, p board.Piece) *Builder {
	if bd.err != nil {
		return bd
	}
	if !sq.OnBoard() {
		bd.err = fmt.Errorf("%w: square %v is off the board", ErrInconsistent, sq)
		return bd
	}
	if bd.b[sq].Type() != board.Empty {
		bd.err = fmt.Errorf("%w: square %v already holds %v", ErrInconsistent, sq, bd.b[sq])
		return bd
	}
	bd.b[sq] = p
	return bd
}

// King places c's King facing o.
func (bd *Builder) King(c board.Color, sq board.Square, o board.Orientation) *Builder {
	return bd.place(sq, board.NewPiece(c, board.King, o))
}

// Pawn places a pawn of c facing o.
func (bd *Builder) Pawn(c board.Color, sq board.Square, o board.Orientation) *Builder {
	return bd.place(sq, board.NewPiece(c, board.Pawn, o))
}

// Piece places an already packed piece.
func (bd *Builder) Piece(sq board.Square, p board.Piece) *Builder {
	return bd.place(sq, p)
}

func (bd *Builder) Ply(ply int) *Builder {
	bd.ply = ply
	return bd
}

func (bd *Builder) Build() (*Position, error) {
	if bd.err != nil {
		return nil, bd.err
	}
	return FromBoard(bd.b, bd.ply)
}
