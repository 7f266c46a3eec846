package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the configuration for the demo trading console.
type Config struct {
	Symbol        string `env:"SYMBOL" envDefault:"VAL/USD"`
	PriceScale    int32  `env:"PRICE_SCALE" envDefault:"2"`    // Decimal exponent: 2 = cents
	QuantityScale int32  `env:"QUANTITY_SCALE" envDefault:"4"` // Decimal exponent: 4 = 1e-4 units
	DepthLimit    uint32 `env:"DEPTH_LIMIT" envDefault:"5"`
	TapeLimit     int    `env:"TAPE_LIMIT" envDefault:"10"`
	Seed          bool   `env:"SEED" envDefault:"true"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
}

// loadConfig loads the configuration from environment variables and .env file.
func loadConfig() (*Config, error) {
	_ = godotenv.Load() // Load environment variables from .env file, if present

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
