package config

import (
	"errors"
	"log"
	"os"
)

type Config struct {
	Port    string
	DBDSN   string
	AppEnv  string
	LogFile string
}

// Load reads configuration from the environment. DB_DSN has no usable
// fallback, so its absence is an error the caller treats as fatal.
func Load() (Config, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, errors.New("DB_DSN environment variable is required")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	cfg := Config{Port: port, DBDSN: dsn, AppEnv: env, LogFile: os.Getenv("LOG_FILE")}
	log.Printf("[config] PORT=%s APP_ENV=%s LOG_FILE=%s", cfg.Port, cfg.AppEnv, cfg.LogFile)
	return cfg, nil
}

// IsProduction controls how much error detail leaks into responses.
func (c Config) IsProduction() bool { return c.AppEnv == "production" }
