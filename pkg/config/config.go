package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Pricing PricingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// PricingConfig holds the fallback pricing inputs used when an
// assessment request leaves them out.
type PricingConfig struct {
	DefaultCostPerUnit  float64
	DefaultTargetMargin float64
	DefaultDealSize     float64
	DefaultSegment      string
	DefaultVariance     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	costPerUnit, err := strconv.ParseFloat(getEnv("PRICING_DEFAULT_COST_PER_UNIT", "1.0"), 64)
	if err != nil {
		return nil, errors.New("invalid default cost per unit")
	}

	targetMargin, err := strconv.ParseFloat(getEnv("PRICING_DEFAULT_TARGET_MARGIN", "65"), 64)
	if err != nil {
		return nil, errors.New("invalid default target margin")
	}

	dealSize, err := strconv.ParseFloat(getEnv("PRICING_DEFAULT_DEAL_SIZE", "15000"), 64)
	if err != nil {
		return nil, errors.New("invalid default deal size")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "AI Pricing Navigator API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Pricing: PricingConfig{
			DefaultCostPerUnit:  costPerUnit,
			DefaultTargetMargin: targetMargin,
			DefaultDealSize:     dealSize,
			DefaultSegment:      getEnv("PRICING_DEFAULT_SEGMENT", "mid_market"),
			DefaultVariance:     getEnv("PRICING_DEFAULT_COST_VARIANCE", "moderate"),
		},
	}

	if cfg.Pricing.DefaultCostPerUnit <= 0 {
		return nil, errors.New("default cost per unit must be positive")
	}

	if cfg.Pricing.DefaultTargetMargin >= 100 {
		return nil, errors.New("default target margin must be below 100")
	}

	if cfg.Pricing.DefaultDealSize <= 0 {
		return nil, errors.New("default deal size must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
