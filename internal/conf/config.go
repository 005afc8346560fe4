// Package conf holds the env-driven configuration of the demo command.
package conf

import (
	"github.com/caarlos0/env/v6"
)

type Sim struct {
	// Seed for the deterministic source. 0 means seed from system entropy.
	Seed int64 `env:"LOOTSIM_SEED" envDefault:"0"`

	// Draws is the number of weighted picks per convergence trial.
	Draws int `env:"LOOTSIM_DRAWS" envDefault:"100000"`

	// ShuffleTrials is the number of deck shuffles per frequency trial.
	ShuffleTrials int `env:"LOOTSIM_SHUFFLE_TRIALS" envDefault:"20000"`

	// DeckSize is the length of the deck used by the shuffle trials.
	DeckSize int `env:"LOOTSIM_DECK_SIZE" envDefault:"4"`

	// Secure switches the shuffle trial to the cryptographically secure path.
	Secure bool `env:"LOOTSIM_SECURE" envDefault:"false"`
}

func ParseEnv() (*Sim, error) {
	cfg := Sim{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
