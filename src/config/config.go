package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lost-woods/handodds/src/odds"
	"github.com/lost-woods/handodds/src/rng"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Port   string `env:"PORT" envDefault:"777"`
	APIKey string `env:"API_KEY"`

	EntropySource     string        `env:"ENTROPY_SOURCE" envDefault:"crypto"`
	SerialDevice      string        `env:"SERIAL_DEVICE_NAME"`
	SerialBaudRate    int           `env:"SERIAL_BAUD_RATE" envDefault:"9600"`
	SerialReadTimeout int           `env:"SERIAL_READ_TIMEOUT" envDefault:"0"`
	HealthInterval    time.Duration `env:"RNG_HEALTH_INTERVAL" envDefault:"10s"`

	MaxSimulationTrials int `env:"MAX_SIMULATION_TRIALS" envDefault:"200000"`
	MaxDeckSize         int `env:"MAX_DECK_SIZE" envDefault:"200"`
	MaxHandSize         int `env:"MAX_HAND_SIZE" envDefault:"15"`
	MaxCategories       int `env:"MAX_CATEGORIES" envDefault:"8"`
	MaxRules            int `env:"MAX_RULES" envDefault:"16"`
}

// Load reads dotenv files (missing files are ignored) and parses the
// environment into a Config.
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	for name, v := range map[string]int{
		"MAX_SIMULATION_TRIALS": cfg.MaxSimulationTrials,
		"MAX_DECK_SIZE":         cfg.MaxDeckSize,
		"MAX_HAND_SIZE":         cfg.MaxHandSize,
		"MAX_CATEGORIES":        cfg.MaxCategories,
		"MAX_RULES":             cfg.MaxRules,
	} {
		if v <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if cfg.MaxDeckSize > odds.MaxDeckSize {
		return nil, fmt.Errorf("MAX_DECK_SIZE must not exceed %d, got %d", odds.MaxDeckSize, cfg.MaxDeckSize)
	}
	if cfg.HealthInterval <= 0 {
		return nil, fmt.Errorf("RNG_HEALTH_INTERVAL must be positive, got %s", cfg.HealthInterval)
	}
	return cfg, nil
}

// Source is the entropy source configuration for rng.OpenSource.
// SERIAL_READ_TIMEOUT is in milliseconds.
func (c *Config) Source() rng.SourceConfig {
	return rng.SourceConfig{
		Kind:        c.EntropySource,
		Device:      c.SerialDevice,
		BaudRate:    c.SerialBaudRate,
		ReadTimeout: time.Duration(c.SerialReadTimeout) * time.Millisecond,
	}
}
