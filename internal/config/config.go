package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr         string        `env:"SOCIETY_ADDR" envDefault:":8080"`
	SeedPath     string        `env:"SOCIETY_SEED_PATH"`
	ChatDelay    time.Duration `env:"SOCIETY_CHAT_DELAY" envDefault:"1500ms"`
	ReadTimeout  time.Duration `env:"SOCIETY_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SOCIETY_WRITE_TIMEOUT" envDefault:"15s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ChatDelay < 0 {
		return Config{}, fmt.Errorf("SOCIETY_CHAT_DELAY must not be negative, got %s", cfg.ChatDelay)
	}
	return cfg, nil
}
