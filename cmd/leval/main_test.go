package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/domino14/leiserchess/config"
	"github.com/domino14/leiserchess/testhelpers"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestReadPositions(t *testing.T) {
	is := is.New(t)
	in := strings.NewReader("# comment\n\n  " + testhelpers.Opening + "  \n" + testhelpers.Midgame + "\n")
	fens, err := readPositions(nil, in)
	is.NoErr(err)
	is.Equal(fens, []string{testhelpers.Opening, testhelpers.Midgame})

	fens, err = readPositions([]string{"x"}, in)
	is.NoErr(err)
	is.Equal(fens, []string{"x"})
}

func TestRun(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"--threads", "2"}))
	in := strings.NewReader(testhelpers.Opening + "\n3ss4/8/8/8/8/8/8/3NN4 B\n")
	var out bytes.Buffer
	is.NoErr(run(context.Background(), cfg, in, &out))

	var rep report
	is.NoErr(yaml.Unmarshal(out.Bytes(), &rep))
	is.Equal(len(rep.Evaluations), 2)
	is.Equal(rep.Evaluations[0].Position, testhelpers.Opening)
	is.Equal(int(rep.Evaluations[0].Breakdown.Score), 0)
	is.Equal(int(rep.Evaluations[1].Breakdown.Score), 30000)
	is.Equal(rep.Summary.Decided, 1)
	is.Equal(rep.Weights.KFace, 5000)
}

func TestRunBadPosition(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"8/8 W"}))
	var out bytes.Buffer
	err := run(context.Background(), cfg, strings.NewReader(""), &out)
	is.True(err != nil)
}
