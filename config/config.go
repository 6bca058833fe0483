package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLogLevel   = "log-level"
	ConfigThreads    = "threads"
	ConfigSeed       = "seed"
	ConfigConfigFile = "config-file"

	ConfigEvalRandomize   = "eval-randomize"
	ConfigEvalHAttack     = "eval-hattack"
	ConfigEvalPBetween    = "eval-pbetween"
	ConfigEvalKFace       = "eval-kface"
	ConfigEvalKAggressive = "eval-kaggressive"
	ConfigEvalMobility    = "eval-mobility"
	ConfigEvalPawnPin     = "eval-pawnpin"
)

const envPrefix = "LEISERCHESS"

type Config struct {
	*viper.Viper
	args []string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigThreads, 1)
	v.SetDefault(ConfigSeed, 0)
	v.SetDefault(ConfigConfigFile, "")

	v.SetDefault(ConfigEvalRandomize, 0)
	v.SetDefault(ConfigEvalHAttack, 1000)
	v.SetDefault(ConfigEvalPBetween, 1000)
	v.SetDefault(ConfigEvalKFace, 5000)
	v.SetDefault(ConfigEvalKAggressive, 10000)
	v.SetDefault(ConfigEvalMobility, 1000)
	v.SetDefault(ConfigEvalPawnPin, 1000)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfig returns a configuration holding only defaults and whatever
// LEISERCHESS_* environment variables are set.
func DefaultConfig() *Config {
	return &Config{Viper: newViper()}
}

// Load parses command-line flags into the configuration. Precedence is
// flags, then the environment, then the config file, then defaults.
func (c *Config) Load(args []string) error {
	c.Viper = newViper()

	fs := pflag.NewFlagSet("leiserchess", pflag.ContinueOnError)
	fs.String(ConfigLogLevel, "info", "log level: debug, info or disabled")
	fs.Int(ConfigThreads, 1, "number of evaluation workers")
	fs.Uint64(ConfigSeed, 0, "base seed for the evaluation jitter; 0 seeds from the OS")
	fs.String(ConfigConfigFile, "", "optional YAML config file")

	fs.Int(ConfigEvalRandomize, 0, "jitter magnitude added to every evaluation")
	fs.Int(ConfigEvalHAttack, 1000, "weight of beam paths passing near the enemy king")
	fs.Int(ConfigEvalPBetween, 1000, "bonus for pawns between the kings")
	fs.Int(ConfigEvalKFace, 5000, "weight of a king facing the enemy king")
	fs.Int(ConfigEvalKAggressive, 10000, "weight of a king's room behind it")
	fs.Int(ConfigEvalMobility, 1000, "weight of unattacked squares around the king")
	fs.Int(ConfigEvalPawnPin, 1000, "weight of pawns outside the enemy beam")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	if cf := c.GetString(ConfigConfigFile); cf != "" {
		c.SetConfigFile(cf)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the positional arguments left over by Load.
func (c *Config) Args() []string {
	return c.args
}
