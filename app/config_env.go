//go:build !tinygo

package app

import (
	"fmt"

	"sparkcalc/hal"

	"github.com/caarlos0/env/v11"
)

// LoadConfig reads SPARKCALC_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Hz <= 0 {
		return Config{}, fmt.Errorf("parse env: SPARKCALC_HZ must be positive, got %d", cfg.Hz)
	}
	return cfg, nil
}

func (c Config) HeadlessConfig() hal.HeadlessConfig {
	return hal.HeadlessConfig{
		Enabled: c.Headless,
		Hz:      c.Hz,
		Ticks:   c.Ticks,
		Keys:    c.Keys,
		Readout: c.Readout,
	}
}

func (c Config) WindowConfig() hal.WindowConfig {
	return hal.WindowConfig{Scale: c.Scale, Readout: c.Readout}
}
