// Package eval scores positions for the search. Scores are fixed-point and
// relative to the side to move.
package eval

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/endgame"
	"github.com/domino14/leiserchess/game"
	"github.com/domino14/leiserchess/laser"
)

// Rand is the jitter source. Each Evaluator owns one; it must never be
// shared between goroutines.
type Rand interface {
	Intn(n int) int
}

// SideTerms are one color's weighted heuristic values, before they are
// added (White) or subtracted (Black).
type SideTerms struct {
	KFace       EvScore `yaml:"kface"`
	KAggressive EvScore `yaml:"kaggressive"`
	Material    EvScore `yaml:"material"`
	PBetween    EvScore `yaml:"pbetween"`
	PCentral    EvScore `yaml:"pcentral"`
	HAttack     EvScore `yaml:"hattack"`
	Mobility    EvScore `yaml:"mobility"`
	PawnPin     EvScore `yaml:"pawnpin"`
}

func (s SideTerms) Total() EvScore {
	return s.KFace + s.KAggressive + s.Material + s.PBetween + s.PCentral +
		s.HAttack + s.Mobility + s.PawnPin
}

// Breakdown is every step of one evaluation.
type Breakdown struct {
	Status endgame.Status `yaml:"-"`
	Result string         `yaml:"result"`
	White  SideTerms      `yaml:"white"`
	Black  SideTerms      `yaml:"black"`
	Jitter EvScore        `yaml:"jitter"`
	// Raw is White's view of the position, jitter included, before the
	// side-to-move flip and scaling.
	Raw   EvScore `yaml:"raw"`
	Score Score   `yaml:"score"`
}

type Evaluator struct {
	weights Weights
	oracle  endgame.Oracle
	rng     Rand
}

// NewEvaluator builds an evaluator. A nil oracle never declares a result;
// a nil rng is only allowed when jitter is disabled.
func NewEvaluator(weights Weights, oracle endgame.Oracle, rng Rand) *Evaluator {
	if oracle == nil {
		oracle = endgame.NoOracle{}
	}
	if rng == nil && weights.Randomize != 0 {
		log.Panic().Int("randomize", weights.Randomize).Msg("jitter enabled without a random source")
	}
	return &Evaluator{weights: weights, oracle: oracle, rng: rng}
}

func (e *Evaluator) Weights() Weights {
	return e.weights
}

// Evaluate scores pos for the side to move. Both lasers are recomputed and
// written to pos's cache. With verbose set, the breakdown is logged at debug
// level.
func (e *Evaluator) Evaluate(pos *game.Position, verbose bool) Score {
	bd := e.Breakdown(pos)
	if verbose {
		logBreakdown(pos, bd)
	}
	return bd.Score
}

// Breakdown runs one evaluation and returns every term. It draws from the
// jitter stream exactly as Evaluate does.
func (e *Evaluator) Breakdown(pos *game.Position) Breakdown {
	var bd Breakdown
	bd.Status = e.oracle.Status(pos)
	bd.Result = bd.Status.String()
	switch bd.Status {
	case endgame.FirstPlayerWon:
		bd.Raw = WinningScore
		bd.Score = WinningScore
		return bd
	case endgame.SecondPlayerWon:
		bd.Raw = -WinningScore
		bd.Score = -WinningScore
		return bd
	}

	w := e.weights
	whiteLaser, blackLaser := laser.MarkBoth(pos)
	paths := [2]uint64{whiteLaser.Path, blackLaser.Path}

	for _, c := range []board.Color{board.White, board.Black} {
		t := SideTerms{
			KFace:       kface(pos, c, w.KFace),
			KAggressive: kaggressive(pos, c, w.KAggressive),
			HAttack:     EvScore(w.HAttack * hAttackable(pos, c, paths[c])),
			Mobility:    EvScore(w.Mobility * mobility(pos, c, paths[c.Opp()])),
			PawnPin:     EvScore(w.PawnPin * pawnpin(pos, c, paths[c.Opp()])),
		}
		t.Material, t.PBetween, t.PCentral = pawnTerms(pos, c, w.PBetween)
		if c == board.White {
			bd.White = t
		} else {
			bd.Black = t
		}
	}

	score := bd.White.Total() - bd.Black.Total()
	if w.Randomize != 0 {
		bd.Jitter = EvScore(e.rng.Intn(2*w.Randomize+1) - w.Randomize)
		score += bd.Jitter
	}
	bd.Raw = score
	if pos.SideToMove() == board.Black {
		score = -score
	}
	bd.Score = Score(score / EvScoreRatio)
	return bd
}

func logBreakdown(pos *game.Position, bd Breakdown) {
	if bd.Status.Decided() {
		log.Debug().Str("result", bd.Result).Int16("score", int16(bd.Score)).Msg("decided position")
		return
	}
	for _, side := range []struct {
		c board.Color
		t SideTerms
	}{{board.White, bd.White}, {board.Black, bd.Black}} {
		log.Debug().
			Str("color", side.c.String()).
			Int32("kface", int32(side.t.KFace)).
			Int32("kaggressive", int32(side.t.KAggressive)).
			Int32("material", int32(side.t.Material)).
			Int32("pbetween", int32(side.t.PBetween)).
			Int32("pcentral", int32(side.t.PCentral)).
			Int32("hattack", int32(side.t.HAttack)).
			Int32("mobility", int32(side.t.Mobility)).
			Int32("pawnpin", int32(side.t.PawnPin)).
			Msg("eval-terms")
	}
	log.Debug().
		Int("ply", pos.Ply()).
		Int32("jitter", int32(bd.Jitter)).
		Int32("raw", int32(bd.Raw)).
		Int16("score", int16(bd.Score)).
		Msg("eval-score")
}
