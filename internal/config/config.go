package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL" env-default:"host=localhost port=5432 user=postgres password=password dbname=bank_ledger sslmode=disable"`
	ServerPort  string `env:"SERVER_PORT" env-default:"8080"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	return cfg, nil
}
