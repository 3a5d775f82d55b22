// Package config loads process configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// Path to a Google service account key. Empty lets the SDK resolve
	// credentials itself (GOOGLE_APPLICATION_CREDENTIALS and friends).
	GoogleCredentials string `env:"GOOGLE_CREDENTIALS_FILE"`

	StoragePath       string   `env:"STORAGE_PATH" envDefault:"datastore.json"`
	InitSlashCommands bool     `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
	GuildBlacklist    []string `env:"GUILD_BLACKLIST" envSeparator:","`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
