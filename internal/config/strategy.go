package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Harshitk-cp/wolfmind/internal/strategy"
	"gopkg.in/yaml.v3"
)

var ErrInvalidStrategyFile = errors.New("invalid strategy file")

// strategyFile models the YAML preset, e.g.
//
//	seer:
//	  comingout_day: 2
//	possessed:
//	  comingout_day: 1
//	  persona: random
//	  fake_werewolf_probability: 0.4
type strategyFile struct {
	Seer struct {
		ComingoutDay *int `yaml:"comingout_day"`
	} `yaml:"seer"`
	Medium struct {
		ComingoutDay *int `yaml:"comingout_day"`
	} `yaml:"medium"`
	Possessed struct {
		ComingoutDay            *int     `yaml:"comingout_day"`
		Persona                 string   `yaml:"persona"`
		FakeWerewolfProbability *float64 `yaml:"fake_werewolf_probability"`
	} `yaml:"possessed"`
}

// StrategyOptions assembles the heuristic settings: built-in defaults, then the
// STRATEGY_FILE preset if any, then individual env vars. Logger and Rand are
// left for the caller.
func StrategyOptions() (strategy.Options, error) {
	opts := strategy.DefaultOptions()
	if path := StrategyFile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("read strategy file: %w", err)
		}
		if opts, err = applyStrategyYAML(opts, data); err != nil {
			return opts, err
		}
	}

	opts.SeerComingoutDay = intEnv("SEER_COMINGOUT_DAY", opts.SeerComingoutDay)
	opts.MediumComingoutDay = intEnv("MEDIUM_COMINGOUT_DAY", opts.MediumComingoutDay)
	opts.PossessedComingoutDay = intEnv("POSSESSED_COMINGOUT_DAY", opts.PossessedComingoutDay)
	opts.PossessedPersona = personaEnv("POSSESSED_PERSONA", opts.PossessedPersona)
	opts.FakeWerewolfProbability = probabilityEnv("FAKE_WEREWOLF_PROBABILITY", opts.FakeWerewolfProbability)
	return opts, nil
}

func applyStrategyYAML(opts strategy.Options, data []byte) (strategy.Options, error) {
	var f strategyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidStrategyFile, err)
	}

	for _, day := range []*int{f.Seer.ComingoutDay, f.Medium.ComingoutDay, f.Possessed.ComingoutDay} {
		if day != nil && *day < 0 {
			return opts, fmt.Errorf("%w: negative comingout_day", ErrInvalidStrategyFile)
		}
	}
	if f.Seer.ComingoutDay != nil {
		opts.SeerComingoutDay = *f.Seer.ComingoutDay
	}
	if f.Medium.ComingoutDay != nil {
		opts.MediumComingoutDay = *f.Medium.ComingoutDay
	}
	if f.Possessed.ComingoutDay != nil {
		opts.PossessedComingoutDay = *f.Possessed.ComingoutDay
	}

	switch p := strategy.Persona(f.Possessed.Persona); p {
	case "":
	case strategy.PersonaSeer, strategy.PersonaMedium, strategy.PersonaRandom:
		opts.PossessedPersona = p
	default:
		return opts, fmt.Errorf("%w: unknown persona %q", ErrInvalidStrategyFile, p)
	}

	if p := f.Possessed.FakeWerewolfProbability; p != nil {
		if *p < 0 || *p > 1 {
			return opts, fmt.Errorf("%w: fake_werewolf_probability out of range", ErrInvalidStrategyFile)
		}
		opts.FakeWerewolfProbability = *p
	}
	return opts, nil
}
