package formkit

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// ErrParsingConfig indicates the environment could not be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse formkit config")

// Config carries the process-wide validation defaults an embedding
// application usually tunes through its environment.
type Config struct {
	// DefaultErrorMessage replaces the engine's fallback message for failing
	// rules that carry no message of their own.
	DefaultErrorMessage string `env:"FORMKIT_DEFAULT_ERROR_MESSAGE"`

	// RequiredErrorMessage is the message registered for the intrinsic
	// isRequired rule.
	RequiredErrorMessage string `env:"FORMKIT_REQUIRED_ERROR_MESSAGE" envDefault:"This field is required."`
}

var loadDotEnv sync.Once

// LoadConfig reads Config from the environment, loading a .env file first if
// one is present.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		// The .env file is optional; a missing one is not an error.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Apply installs the configured messages into a registry.
func (c Config) Apply(reg *rules.Registry) {
	if reg == nil {
		return
	}
	if c.DefaultErrorMessage != "" {
		reg.SetDefaultMessage(c.DefaultErrorMessage)
	}
	if c.RequiredErrorMessage != "" {
		reg.Register(rules.RequiredKey, c.RequiredErrorMessage)
	}
}
