package eval

import (
	"math/bits"

	"github.com/rs/zerolog/log"

	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/game"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// between reports whether c lies on or between a and b, in either order.
func between(c, a, b int) bool {
	return (c >= a && c <= b) || (c <= a && c >= b)
}

// kface rewards c's King for facing the enemy King, more so when close.
func kface(pos *game.Position, c board.Color, weight int) EvScore {
	sq := pos.KingSquare(c)
	opp := pos.KingSquare(c.Opp())
	df := opp.File() - sq.File()
	dr := opp.Rank() - sq.Rank()

	var bonus int
	switch o := pos.At(sq).Orientation(); o {
	case board.NN:
		bonus = dr
	case board.EE:
		bonus = df
	case board.SS:
		bonus = -dr
	case board.WW:
		bonus = -df
	default:
		log.Panic().Uint8("orientation", uint8(o)).Msg("illegal king orientation")
	}
	return EvScore(float64(bonus*weight) * invS[abs(dr)+abs(df)-1])
}

// kaggressive rewards c's King for the room it has behind it, measured away
// from the enemy King.
func kaggressive(pos *game.Position, c board.Color, weight int) EvScore {
	sq := pos.KingSquare(c)
	opp := pos.KingSquare(c.Opp())
	f, r := sq.File(), sq.Rank()
	df := opp.File() - f
	dr := opp.Rank() - r

	var bonus int
	switch {
	case df >= 0 && dr >= 0:
		bonus = (f + 1) * (r + 1)
	case df <= 0 && dr >= 0:
		bonus = (board.BoardWidth - f) * (r + 1)
	case df <= 0 && dr <= 0:
		bonus = (board.BoardWidth - f) * (board.BoardWidth - r)
	case df >= 0 && dr <= 0:
		bonus = (f + 1) * (board.BoardWidth - r)
	}
	return EvScore(weight * bonus / (board.BoardWidth * board.BoardWidth))
}

// pawnTerms returns the flat material, between-Kings and centrality totals
// for c's pawns.
func pawnTerms(pos *game.Position, c board.Color, pbetween int) (material, betw, central EvScore) {
	k0 := pos.KingSquare(board.White)
	k1 := pos.KingSquare(board.Black)
	for mask := pos.PawnMask(c); mask != 0; mask &= mask - 1 {
		i := bits.TrailingZeros64(mask)
		f, r := i/board.BoardWidth, i%board.BoardWidth
		material += PawnEvValue
		if between(f, k0.File(), k1.File()) && between(r, k0.Rank(), k1.Rank()) {
			betw += EvScore(pbetween)
		}
		central += pcentral[i]
	}
	return material, betw, central
}

// hAttackable sums, over every square of c's beam path, the inverse file
// and rank distances to the enemy King. The sum is kept in single
// precision and truncated.
func hAttackable(pos *game.Position, c board.Color, path uint64) int {
	opp := pos.KingSquare(c.Opp())
	kf, kr := opp.File(), opp.Rank()
	var h float32
	for ; path != 0; path &= path - 1 {
		i := bits.TrailingZeros64(path)
		h = float32(float64(h) + (invS[abs(kf-(i>>3))] + invS[abs(kr-(i&7))]))
	}
	return int(h)
}

// mobility counts the squares around c's King, its own included, that the
// opposing beam does not cross.
func mobility(pos *game.Position, c board.Color, oppPath uint64) int {
	return bits.OnesCount64(^oppPath & board.Neighborhood(pos.KingSquare(c)))
}

// pawnpin counts c's pawns outside the opposing beam.
func pawnpin(pos *game.Position, c board.Color, oppPath uint64) int {
	free := ^oppPath & pos.PawnMask(c)
	n := bits.OnesCount64(free)
	if free&pos.KingSquare(c).Bit() != 0 {
		n--
	}
	return n
}
