// Package config loads settings from the environment and an optional
// shopfront.yaml file via viper.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the CLI and the stub API server.
type Config struct {
	// APIBaseURL is the root of the inventory service, e.g. http://localhost:8080.
	APIBaseURL string
	// HTTPTimeout bounds a single client request. Zero means transport default.
	HTTPTimeout time.Duration
	// Currency is the display currency code (USD, EUR, GBP, BRL).
	Currency string
	// PageSize is the storefront snapshot page size.
	PageSize int

	// Addr is the listen address of the stub API server.
	Addr string
	// DatabaseURL switches the stub catalog store to Postgres when set.
	DatabaseURL string
	// RedisAddr switches the stub activity counters to Redis when set.
	RedisAddr string
}

// Load reads shopfront.yaml from the working directory when present and
// overlays environment variables (API_BASE_URL, HTTP_TIMEOUT, CURRENCY,
// PAGE_SIZE, ADDR, DATABASE_URL, REDIS_ADDR).
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("shopfront")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("currency", "USD")
	v.SetDefault("page_size", 100)
	v.SetDefault("addr", ":8080")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		APIBaseURL:  v.GetString("api_base_url"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		Currency:    v.GetString("currency"),
		PageSize:    v.GetInt("page_size"),
		Addr:        v.GetString("addr"),
		DatabaseURL: v.GetString("database_url"),
		RedisAddr:   v.GetString("redis_addr"),
	}, nil
}
