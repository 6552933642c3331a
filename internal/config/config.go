// Package config loads the settings of the circuits command.
//
// Values come from Default, then an optional YAML file, then command-line
// flags; Validate checks the merged result.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DefaultIterations is the bounded merge count used by the puzzle.
const DefaultIterations = 1000

// Config is the resolved configuration of one invocation.
type Config struct {
	// Input is the path of the point records.
	Input string `yaml:"input" validate:"required"`

	// Iterations is k for bounded clustering.
	Iterations int `yaml:"iterations" validate:"gte=0"`

	// Strategy names the merge implementation.
	Strategy string `yaml:"strategy" validate:"oneof=relabel union-find"`

	// MaxDistance prunes longer edges; 0 keeps all of them.
	MaxDistance float64 `yaml:"max_distance" validate:"gte=0"`

	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Iterations: DefaultIterations,
		Strategy:   "relabel",
		LogLevel:   "warn",
	}
}

// Load reads path as YAML on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every field that breaks its constraint.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Errorf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(msgs...))
	}

	return fmt.Errorf("%w: %w", ErrInvalid, err)
}
