// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls the gateways, search and the web server
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL"    envDefault:"gemini-1.5-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	BibleAPIURL      string        `env:"BIBLE_API_URL"     envDefault:"https://bible-api.com"`
	BibleTranslation string        `env:"BIBLE_TRANSLATION" envDefault:"kjv"`
	BibleAPITimeout  time.Duration `env:"BIBLE_API_TIMEOUT" envDefault:"30s"`

	SearchMaxReferences int `env:"SEARCH_MAX_REFERENCES" envDefault:"5"`
	SearchConcurrency   int `env:"SEARCH_CONCURRENCY"    envDefault:"1"`

	StudyInstruction string `env:"STUDY_INSTRUCTION"`
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the services cannot work with
func (c Config) Validate() error {
	if c.SearchMaxReferences <= 0 {
		return fmt.Errorf("SEARCH_MAX_REFERENCES must be positive, got %d", c.SearchMaxReferences)
	}
	if c.SearchConcurrency <= 0 {
		return fmt.Errorf("SEARCH_CONCURRENCY must be positive, got %d", c.SearchConcurrency)
	}
	if c.BibleAPITimeout <= 0 {
		return fmt.Errorf("BIBLE_API_TIMEOUT must be positive, got %s", c.BibleAPITimeout)
	}
	return nil
}
