package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is the environment-driven configuration for the console binary.
type Config struct {
	// DatabaseURL enables the Postgres snapshot store when set.
	DatabaseURL string

	BaseSmall  decimal.Decimal
	BaseMedium decimal.Decimal
	BaseBig    decimal.Decimal
	OrderFee   decimal.Decimal
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	var err error
	if cfg.BaseSmall, err = envDecimal("SHIPPING_BASE_SMALL", "2.5"); err != nil {
		return Config{}, err
	}
	if cfg.BaseMedium, err = envDecimal("SHIPPING_BASE_MEDIUM", "5"); err != nil {
		return Config{}, err
	}
	if cfg.BaseBig, err = envDecimal("SHIPPING_BASE_BIG", "10"); err != nil {
		return Config{}, err
	}
	if cfg.OrderFee, err = envDecimal("ORDER_FEE", "0.1"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envDecimal(key, fallback string) (decimal.Decimal, error) {
	raw := os.Getenv(key)
	if raw == "" {
		raw = fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return d, nil
}
