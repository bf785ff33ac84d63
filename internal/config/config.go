package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings, read from the environment.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	DrawAPIBaseURL string        `env:"DRAW_API_BASE_URL" envDefault:"https://lotto.api.rayriffy.com"`
	DrawAPITimeout time.Duration `env:"DRAW_API_TIMEOUT" envDefault:"10s"`
	DrawCacheTTL   time.Duration `env:"DRAW_CACHE_TTL" envDefault:"10m"`
	RandSeed       int64         `env:"RAND_SEED"` // 0 seeds from the clock
	Verbose        bool          `env:"VERBOSE" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
