package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are the runtime options read from the environment. The size
// defaults mirror WindowWidth and WindowHeight.
type Settings struct {
	Width  int    `env:"PORTFOLIO_WIDTH" envDefault:"1280"`
	Height int    `env:"PORTFOLIO_HEIGHT" envDefault:"800"`
	Effect string `env:"PORTFOLIO_EFFECT" envDefault:"particles"`
	Seed   int64  `env:"PORTFOLIO_SEED" envDefault:"0"`
	Sound  bool   `env:"PORTFOLIO_SOUND" envDefault:"false"`
	Debug  bool   `env:"PORTFOLIO_DEBUG" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the optional dotenv files and then parses Settings.
// Variables already set in the process environment win over the files.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the host cannot run with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Width, s.Height)
	}
	switch s.Effect {
	case "particles", "mesh":
	default:
		return fmt.Errorf("unknown effect %q", s.Effect)
	}
	return nil
}
