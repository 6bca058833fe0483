package game

import (
	"github.com/domino14/leiserchess/board"
)

// ColorSwapped returns a copy of p with every piece's color flipped. The
// geometry and the side to move are unchanged, so each side's terms trade
// places. The laser cache is not carried over.
func (p *Position) ColorSwapped() *Position {
	return p.transform(func(sq board.Square) board.Square { return sq }, 0, true)
}

// Rotated180 returns a copy of p turned half way around the board center,
// with every piece turned to match.
func (p *Position) Rotated180() *Position {
	return p.transform(func(sq board.Square) board.Square {
		return board.SquareOf(board.BoardWidth-1-sq.File(), board.BoardWidth-1-sq.Rank())
	}, 2, false)
}

// Mirror is the color-swapped half-turn of p: the same game seen from the
// other side of the table.
func (p *Position) Mirror() *Position {
	return p.Rotated180().ColorSwapped()
}

func (p *Position) transform(mapSq func(board.Square) board.Square, quarters int, swap bool) *Position {
	b := board.NewBoard()
	for f := 0; f < board.BoardWidth; f++ {
		for r := 0; r < board.BoardWidth; r++ {
			sq := board.SquareOf(f, r)
			pc := p.board[sq]
			if pc.Type() == board.Empty {
				continue
			}
			pc = pc.WithOrientation(pc.Orientation().Rotate(quarters))
			if swap {
				pc = pc.WithColor(pc.Color().Opp())
			}
			b[mapSq(sq)] = pc
		}
	}
	n := &Position{
		board:    b,
		history:  p.history,
		key:      p.key,
		ply:      p.ply,
		lastMove: p.lastMove,
		victims:  p.victims,
	}
	for _, c := range []board.Color{board.White, board.Black} {
		src := c
		if swap {
			src = c.Opp()
		}
		n.kloc[c] = mapSq(p.kloc[src])
		n.pawnMask[c] = n.PawnBitmap(c)
	}
	return n
}
