package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database. A postgres:// URL selects Postgres, anything else is a SQLite path.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis. Empty keeps pending carts in process memory.
	RedisURL       string `mapstructure:"REDIS_URL"`
	CartTTLMinutes int    `mapstructure:"CART_TTL_MINUTES"`

	// Business rules
	VoidStrict    bool   `mapstructure:"VOID_STRICT"`
	SupplierDedup bool   `mapstructure:"SUPPLIER_DEDUP"`
	BusinessName  string `mapstructure:"BUSINESS_NAME"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATABASE_URL", "business_inventory.db")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CART_TTL_MINUTES", 60)
	v.SetDefault("VOID_STRICT", false)
	v.SetDefault("SUPPLIER_DEDUP", false)
	v.SetDefault("BUSINESS_NAME", "Inventario")

	// Optional .env file for local development, missing file is not an error
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
