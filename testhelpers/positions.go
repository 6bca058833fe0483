package testhelpers

import (
	"github.com/domino14/leiserchess/config"
	"github.com/domino14/leiserchess/fen"
	"github.com/domino14/leiserchess/game"
)

var DefaultConfig = config.DefaultConfig()

const (
	// Opening is symmetric under a half turn with colors swapped.
	Opening = "ss7/2nwse4/3nwse3/1nwse5/5NWSE1/3NWSE3/4NWSE2/7NN W"

	// StraightShot has the two Kings facing each other down the d-file.
	StraightShot = "3ss4/8/8/8/8/8/8/3NN4 W"

	// Reflection sends White's eastward beam north off a pawn on e3.
	Reflection = "8/8/8/8/EE3NW3/8/8/7ww W"

	// Absorption has White's eastward beam hit the back of a pawn on e3.
	Absorption = "8/8/8/8/EE3ne3/8/8/7ww W"

	// Midgame has the Kings on distinct files and ranks with pawns of both
	// colors in and out of the beams.
	Midgame = "8/1ss2nw3/4se3/2NE2sw2/1sw3NW2/3EE4/1SE6/8 W 12"
)

// MustParse parses a position and panics on error.
func MustParse(s string) *game.Position {
	pos, err := fen.Parse(s)
	if err != nil {
		panic(err)
	}
	return pos
}
