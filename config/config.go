// Package config loads runtime settings from the environment. A .env
// file in the working directory is read first when present, so local
// runs don't need exported variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every knob the program reads. All fields default, so an
// empty environment works.
type Config struct {
	StorePath    string `env:"DECKHAND_STORE"     envDefault:"decks.db"`
	DeckFile     string `env:"DECKHAND_FILE"      envDefault:"deck.bin"`
	DeckName     string `env:"DECKHAND_DECK"      envDefault:"table"`
	HandSize     int    `env:"DECKHAND_HAND_SIZE" envDefault:"5"`
	Seed         int64  `env:"DECKHAND_SEED"      envDefault:"0"`
	TemplatePath string `env:"DECKHAND_TEMPLATE"`
}

// Load reads the optional .env file and then parses the environment.
// A zero Seed means the program should draw one from the OS.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
