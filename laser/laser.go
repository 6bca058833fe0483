// Package laser traces a King's beam across the board.
package laser

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/game"
)

// Result is the outcome of firing one beam.
type Result struct {
	// Path has a bit set for every square the beam visited, the firing
	// King's square included.
	Path uint64
	// Destroyed is set when the beam ended on a piece: either the enemy King
	// or a pawn struck on its back. Check the piece on Terminal to tell
	// them apart.
	Destroyed bool
	// Terminal is the last playable square the beam entered.
	Terminal board.Square
}

// Simulate fires c's King. It does not modify pos. A position without a
// King of color c on its recorded square is a corrupted board and panics.
func Simulate(pos *game.Position, c board.Color) Result {
	sq := pos.KingSquare(c)
	k := pos.At(sq)
	if k.Type() != board.King || k.Color() != c {
		log.Panic().Str("color", c.String()).Str("square", sq.String()).
			Str("piece", k.String()).Msg("no king on recorded king square")
	}
	dir := k.Orientation()

	res := Result{Path: sq.Bit(), Terminal: sq}
	b := pos.Board()
	for {
		next := board.Square(int(sq) + board.BeamStep(dir))
		p := b.At(next)
		if p.Type() == board.Invalid {
			return res
		}
		res.Path |= next.Bit()
		res.Terminal = next
		switch p.Type() {
		case board.King:
			res.Destroyed = true
			return res
		case board.Pawn:
			out, ok := board.Reflect(dir, p.Orientation())
			if !ok {
				// hit the back of the pawn.
				res.Destroyed = true
				return res
			}
			dir = out
		}
		sq = next
	}
}

// Mark fires c's King and stores the path and kill flag in pos's laser
// cache.
func Mark(pos *game.Position, c board.Color) Result {
	res := Simulate(pos, c)
	pos.SetLaser(c, res.Path, res.Destroyed)
	return res
}

// MarkBoth refreshes the laser cache for both colors.
func MarkBoth(pos *game.Position) (white, black Result) {
	return Mark(pos, board.White), Mark(pos, board.Black)
}
