package eval

import (
	"fmt"

	"github.com/domino14/leiserchess/config"
)

// Weights scale the heuristics. They are fixed once evaluation starts; the
// centrality table is not a weight.
type Weights struct {
	Randomize   int `yaml:"randomize"`
	HAttack     int `yaml:"hattack"`
	PBetween    int `yaml:"pbetween"`
	KFace       int `yaml:"kface"`
	KAggressive int `yaml:"kaggressive"`
	Mobility    int `yaml:"mobility"`
	PawnPin     int `yaml:"pawnpin"`
}

func DefaultWeights() Weights {
	return Weights{
		Randomize:   0,
		HAttack:     1000,
		PBetween:    1000,
		KFace:       5000,
		KAggressive: 10000,
		Mobility:    1000,
		PawnPin:     1000,
	}
}

// WeightsFromConfig reads the eval-* keys.
func WeightsFromConfig(cfg *config.Config) Weights {
	return Weights{
		Randomize:   cfg.GetInt(config.ConfigEvalRandomize),
		HAttack:     cfg.GetInt(config.ConfigEvalHAttack),
		PBetween:    cfg.GetInt(config.ConfigEvalPBetween),
		KFace:       cfg.GetInt(config.ConfigEvalKFace),
		KAggressive: cfg.GetInt(config.ConfigEvalKAggressive),
		Mobility:    cfg.GetInt(config.ConfigEvalMobility),
		PawnPin:     cfg.GetInt(config.ConfigEvalPawnPin),
	}
}

func (w Weights) Validate() error {
	if w.Randomize < 0 {
		return fmt.Errorf("randomize must not be negative, got %d", w.Randomize)
	}
	return nil
}
