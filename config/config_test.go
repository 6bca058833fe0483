package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetString(ConfigLogLevel), "info")
	is.Equal(cfg.GetInt(ConfigThreads), 1)
	is.Equal(cfg.GetInt(ConfigEvalKFace), 5000)
	is.Equal(cfg.GetInt(ConfigEvalRandomize), 0)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--eval-kface", "42", "--threads=4", "pos1", "pos2"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigEvalKFace), 42)
	is.Equal(cfg.GetInt(ConfigThreads), 4)
	is.Equal(cfg.GetInt(ConfigEvalMobility), 1000)
	is.Equal(cfg.Args(), []string{"pos1", "pos2"})
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--no-such-flag"})
	is.True(err != nil)
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("LEISERCHESS_EVAL_PAWNPIN", "7")
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigEvalPawnPin), 7)

	// flags win over the environment.
	is.NoErr(cfg.Load([]string{"--eval-pawnpin", "9"}))
	is.Equal(cfg.GetInt(ConfigEvalPawnPin), 9)
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	bts, err := yaml.Marshal(map[string]any{
		ConfigEvalHAttack: 123,
		ConfigLogLevel:    "debug",
	})
	is.NoErr(err)
	path := filepath.Join(t.TempDir(), "leiserchess.yaml")
	is.NoErr(os.WriteFile(path, bts, 0o644))

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config-file", path}))
	is.Equal(cfg.GetInt(ConfigEvalHAttack), 123)
	is.Equal(cfg.GetString(ConfigLogLevel), "debug")

	// the environment wins over the file, and flags win over both.
	t.Setenv("LEISERCHESS_EVAL_HATTACK", "456")
	cfg = &Config{}
	is.NoErr(cfg.Load([]string{"--config-file", path}))
	is.Equal(cfg.GetInt(ConfigEvalHAttack), 456)
	is.NoErr(cfg.Load([]string{"--config-file", path, "--eval-hattack", "789"}))
	is.Equal(cfg.GetInt(ConfigEvalHAttack), 789)

	cfg = &Config{}
	err = cfg.Load([]string{"--config-file", filepath.Join(t.TempDir(), "missing.yaml")})
	is.True(err != nil)
}
