// Package endgame decides whether a position is already won.
package endgame

import (
	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/game"
	"github.com/domino14/leiserchess/laser"
)

type Status int

const (
	Ongoing Status = iota
	FirstPlayerWon
	SecondPlayerWon
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case FirstPlayerWon:
		return "first player won"
	case SecondPlayerWon:
		return "second player won"
	}
	return "unknown"
}

// Decided reports whether either side has won.
func (s Status) Decided() bool {
	return s == FirstPlayerWon || s == SecondPlayerWon
}

// Winner returns the winning color. It is only meaningful if Decided.
func (s Status) Winner() board.Color {
	if s == SecondPlayerWon {
		return board.Black
	}
	return board.White
}

// WonBy returns the status for a win by c.
func WonBy(c board.Color) Status {
	if c == board.Black {
		return SecondPlayerWon
	}
	return FirstPlayerWon
}

// An Oracle is consulted before any heuristic is evaluated.
type Oracle interface {
	Status(pos *game.Position) Status
}

// NoOracle never declares a result.
type NoOracle struct{}

func (NoOracle) Status(*game.Position) Status {
	return Ongoing
}

// LaserOracle fires the beam of the side that just moved. If it lands on
// the other King, that side has won. Only the struck piece decides this;
// a beam that removed a pawn is not a win.
type LaserOracle struct{}

func (LaserOracle) Status(pos *game.Position) Status {
	mover := pos.SideToMove().Opp()
	res := laser.Simulate(pos, mover)
	if !res.Destroyed {
		return Ongoing
	}
	p := pos.At(res.Terminal)
	if p.Type() == board.King && p.Color() != mover {
		return WonBy(mover)
	}
	return Ongoing
}
