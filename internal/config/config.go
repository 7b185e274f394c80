// Package config loads runtime configuration from the environment. A
// local .env file is honored when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string // address the HTTP server binds to
	Env      string // application environment ("dev" or "prod")
	SeedDemo bool   // pre-book the demo seat list at startup
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:     getenv("APP_ADDR", ":8080"),
		Env:      getenv("APP_ENV", "dev"),
		SeedDemo: os.Getenv("SEED_DEMO") != "",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
