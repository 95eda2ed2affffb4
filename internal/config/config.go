// internal/config/config.go
//
// Process configuration read from the environment.
// A `.env` file in the working directory is loaded first when present; real
// environment variables always win over it.
//
// Environment variables:
//   LOG_LEVEL=info                     zerolog level
//   PORT=5175                          HTTP listen port (serve)
//   CLIENT_ORIGIN=http://localhost:5173  CORS origin (serve)
//   WORDS_ANSWERS_FILE=/path/answers.txt
//   WORDS_ALLOWED_FILE=/path/allowed.txt
//   STORE_TYPE=memory|redis
//   REDIS_URL=redis://localhost:6379
//   ROUND_TTL=24h                      idle lifetime of a stored round
//   QUIT_TOKEN=no                      guess that abandons a round

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the full set of tunables.
type Config struct {
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	Port         string        `env:"PORT" envDefault:"5175"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	AnswersFile  string        `env:"WORDS_ANSWERS_FILE"`
	AllowedFile  string        `env:"WORDS_ALLOWED_FILE"`
	StoreType    string        `env:"STORE_TYPE" envDefault:"memory"`
	RedisURL     string        `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	RoundTTL     time.Duration `env:"ROUND_TTL" envDefault:"24h"`
	QuitToken    string        `env:"QUIT_TOKEN" envDefault:"no"`
}

// Load reads the optional dotenv files, then parses the environment.
// With no files given, ".env" is tried and silently skipped when missing.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the rest of the program cannot honour.
func (c Config) Validate() error {
	switch c.StoreType {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("config: unknown STORE_TYPE %q", c.StoreType)
	}
	if c.RoundTTL < 0 {
		return fmt.Errorf("config: ROUND_TTL must not be negative")
	}
	return nil
}
