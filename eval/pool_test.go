package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/endgame"
	"github.com/domino14/leiserchess/game"
	"github.com/domino14/leiserchess/testhelpers"
)

func batch(n int) []*game.Position {
	fens := []string{handChecked, testhelpers.Midgame, testhelpers.Opening,
		testhelpers.Reflection, testhelpers.Absorption,
		"3ss4/8/8/8/8/8/8/3NN4 B"}
	positions := make([]*game.Position, n)
	for i := range positions {
		positions[i] = testhelpers.MustParse(fens[i%len(fens)])
	}
	return positions
}

func TestPoolMatchesSerial(t *testing.T) {
	is := is.New(t)
	pool, err := NewPool(DefaultWeights(), endgame.LaserOracle{}, 4, 0)
	is.NoErr(err)
	positions := batch(37)
	bds, err := pool.Evaluate(context.Background(), positions)
	is.NoErr(err)
	is.Equal(len(bds), len(positions))

	ev := NewEvaluator(DefaultWeights(), endgame.LaserOracle{}, nil)
	for i, pos := range batch(37) {
		is.Equal(bds[i].Score, ev.Evaluate(pos, false))
	}
}

func TestPoolSeededJitterRepeats(t *testing.T) {
	is := is.New(t)
	w := DefaultWeights()
	w.Randomize = 2000
	pool, err := NewPool(w, nil, 3, 42)
	is.NoErr(err)

	a, err := pool.Evaluate(context.Background(), batch(30))
	is.NoErr(err)
	b, err := pool.Evaluate(context.Background(), batch(30))
	is.NoErr(err)
	is.Equal(Scores(a), Scores(b))

	jittered := 0
	for _, bd := range a {
		is.True(bd.Jitter >= -2000 && bd.Jitter <= 2000)
		if bd.Jitter != 0 {
			jittered++
		}
	}
	is.True(jittered > 0)
}

func TestPoolCancelled(t *testing.T) {
	is := is.New(t)
	pool, err := NewPool(DefaultWeights(), nil, 2, 0)
	is.NoErr(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pool.Evaluate(ctx, batch(10))
	is.True(errors.Is(err, context.Canceled))
}

func TestNewPoolErrors(t *testing.T) {
	is := is.New(t)
	_, err := NewPool(DefaultWeights(), nil, 0, 0)
	is.True(err != nil)
	w := DefaultWeights()
	w.Randomize = -3
	_, err = NewPool(w, nil, 1, 0)
	is.True(err != nil)
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	pool, err := NewPool(DefaultWeights(), endgame.LaserOracle{}, 2, 0)
	is.NoErr(err)
	bds, err := pool.Evaluate(context.Background(), batch(6))
	is.NoErr(err)
	s := Summarize(bds)
	is.Equal(s.Count, 6)
	is.Equal(s.Decided, 1)
	is.Equal(s.Best, Score(WinningScore))
	is.True(s.Worst <= s.Best)
	is.Equal(Summarize(nil), Summary{})
}

func TestPoolSharedPosition(t *testing.T) {
	is := is.New(t)
	pool, err := NewPool(DefaultWeights(), endgame.LaserOracle{}, 4, 0)
	is.NoErr(err)
	pos := testhelpers.MustParse(handChecked)
	positions := make([]*game.Position, 16)
	for i := range positions {
		positions[i] = pos
	}
	bds, err := pool.Evaluate(context.Background(), positions)
	is.NoErr(err)
	for _, bd := range bds {
		is.Equal(bd.Score, Score(-14))
	}
	// the caller's position is not written to.
	is.Equal(pos.Laser(board.White), uint64(0))
	is.Equal(pos.Laser(board.Black), uint64(0))
}
