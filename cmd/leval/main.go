package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/leiserchess/config"
	"github.com/domino14/leiserchess/endgame"
	"github.com/domino14/leiserchess/eval"
	"github.com/domino14/leiserchess/fen"
	"github.com/domino14/leiserchess/game"
)

var (
	GitVersion string
)

type evaluation struct {
	Position  string         `yaml:"position"`
	Breakdown eval.Breakdown `yaml:"breakdown"`
}

type report struct {
	Version     string       `yaml:"version,omitempty"`
	Weights     eval.Weights `yaml:"weights"`
	Evaluations []evaluation `yaml:"evaluations"`
	Summary     eval.Summary `yaml:"summary"`
}

// readPositions returns the positions given on the command line, or one per
// line of stdin if there are none. Blank lines and lines starting with #
// are skipped.
func readPositions(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	lines = lo.Map(lines, func(l string, _ int) string { return strings.TrimSpace(l) })
	return lo.Filter(lines, func(l string, _ int) bool {
		return l != "" && !strings.HasPrefix(l, "#")
	}), nil
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	fens, err := readPositions(cfg.Args(), in)
	if err != nil {
		return err
	}
	positions := make([]*game.Position, len(fens))
	for i, f := range fens {
		positions[i], err = fen.Parse(f)
		if err != nil {
			return fmt.Errorf("position %d: %w", i+1, err)
		}
	}

	weights := eval.WeightsFromConfig(cfg)
	pool, err := eval.NewPool(weights, endgame.LaserOracle{},
		cfg.GetInt(config.ConfigThreads), cfg.GetUint64(config.ConfigSeed))
	if err != nil {
		return err
	}
	log.Info().Int("positions", len(positions)).Int("threads", cfg.GetInt(config.ConfigThreads)).
		Msg("evaluating")
	bds, err := pool.Evaluate(ctx, positions)
	if err != nil {
		return err
	}

	rep := report{
		Version: GitVersion,
		Weights: weights,
		Evaluations: lo.Map(bds, func(bd eval.Breakdown, i int) evaluation {
			return evaluation{Position: fen.Encode(positions[i]), Breakdown: bd}
		}),
		Summary: eval.Summarize(bds),
	}
	enc := yaml.NewEncoder(out)
	defer enc.Close()
	return enc.Encode(rep)
}

func main() {
	cfg := &config.Config{}
	err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var logger zerolog.Logger
	ll := cfg.GetString(config.ConfigLogLevel)
	switch ll {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logger = zerolog.New(os.Stderr).Level(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	logger.Debug().Msgf("Loaded config: %v", cfg.AllSettings())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("leval failed")
		os.Exit(1)
	}
}
