package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config is built once at startup and passed to whatever needs it.
// Nothing reads the environment after loadConfig returns.
type config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	Environment     string        `env:"APP_ENV" envDefault:"development"`
	DBURL           string        `env:"DB_URL,required,notEmpty"`
	JWTSecret       string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAITimeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"15s"`
}

func (c config) production() bool { return c.Environment == "production" }

// loadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.JWTSecret) < 32 {
		return config{}, errors.New("JWT_SECRET must be at least 32 characters")
	}
	return cfg, nil
}
