package eval

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/leiserchess/endgame"
	"github.com/domino14/leiserchess/game"
)

const rngBufSize = 1024

// Pool evaluates batches of positions on a fixed number of workers. Each
// worker has its own Evaluator and jitter stream.
type Pool struct {
	weights Weights
	oracle  endgame.Oracle
	threads int
	seed    uint64
}

// NewPool creates a pool. With a nonzero seed every worker's jitter stream
// is derived from it, so a batch evaluated twice with the same thread count
// gives the same scores. A zero seed draws fresh entropy.
func NewPool(weights Weights, oracle endgame.Oracle, threads int, seed uint64) (*Pool, error) {
	if threads < 1 {
		return nil, errors.New("threads must be at least 1")
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Pool{weights: weights, oracle: oracle, threads: threads, seed: seed}, nil
}

// workerRNG returns the jitter stream for worker t.
func (p *Pool) workerRNG(t int) *frand.RNG {
	if p.seed == 0 {
		return frand.New()
	}
	seed := make([]byte, 32)
	binary.LittleEndian.PutUint64(seed[0:], p.seed)
	binary.LittleEndian.PutUint64(seed[8:], uint64(t))
	return frand.NewCustom(seed, rngBufSize, 20)
}

// Evaluate scores every position. Worker t takes positions t, t+threads,
// t+2*threads and so on. Each worker evaluates a copy, so the same position
// may appear more than once and the callers' laser caches are left alone.
// Results are in input order. If ctx is cancelled the remaining positions are skipped
// and the context error is returned.
func (p *Pool) Evaluate(ctx context.Context, positions []*game.Position) ([]Breakdown, error) {
	results := make([]Breakdown, len(positions))
	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < p.threads; t++ {
		g.Go(func() error {
			ev := NewEvaluator(p.weights, p.oracle, p.workerRNG(t))
			n := 0
			for i := t; i < len(positions); i += p.threads {
				select {
				case <-ctx.Done():
					log.Debug().Int("thread", t).Int("evaluated", n).Msg("eval worker cancelled")
					return ctx.Err()
				default:
				}
				results[i] = ev.Breakdown(positions[i].Copy())
				n++
			}
			log.Debug().Int("thread", t).Int("evaluated", n).Msg("eval worker done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Scores extracts the final scores from a batch of breakdowns.
func Scores(bds []Breakdown) []Score {
	return lo.Map(bds, func(bd Breakdown, _ int) Score { return bd.Score })
}

// Summary describes a batch of evaluations.
type Summary struct {
	Count   int   `yaml:"count"`
	Decided int   `yaml:"decided"`
	Best    Score `yaml:"best"`
	Worst   Score `yaml:"worst"`
	Mean    int   `yaml:"mean"`
}

func Summarize(bds []Breakdown) Summary {
	if len(bds) == 0 {
		return Summary{}
	}
	scores := Scores(bds)
	total := lo.SumBy(scores, func(s Score) int { return int(s) })
	return Summary{
		Count:   len(bds),
		Decided: lo.CountBy(bds, func(bd Breakdown) bool { return bd.Status.Decided() }),
		Best:    lo.Max(scores),
		Worst:   lo.Min(scores),
		Mean:    total / len(bds),
	}
}
