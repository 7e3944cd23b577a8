package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is built once at startup and passed into every constructor.
// Business logic never reads the environment directly.
type Config struct {
	ServiceEnvironment string `koanf:"service_environment"`
	ServicePort        string `koanf:"service_port"`

	PostgresDSN string `koanf:"postgres_dsn"`

	SlackSigningSecret string `koanf:"slack_signing_secret"`
	SlackBotToken      string `koanf:"slack_bot_token"`

	// StatsChannelID is the channel whose activity is aggregated and where
	// the digest is posted. Missing value fails the aggregation call, not
	// process startup.
	StatsChannelID string `koanf:"stats_channel_id"`

	Timezone       string `koanf:"timezone"`
	DigestSchedule string `koanf:"digest_schedule"`
}

func defaultConfig() *Config {
	return &Config{
		ServiceEnvironment: "development",
		ServicePort:        "8080",
		Timezone:           "Asia/Kolkata",
		DigestSchedule:     "30 0 * * *",
	}
}

// Load layers environment variables over defaults:
// SERVICE_PORT -> service_port, SLACK_BOT_TOKEN -> slack_bot_token, etc.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var missing []string

	if c.PostgresDSN == "" {
		missing = append(missing, "POSTGRES_DSN")
	}
	if c.SlackSigningSecret == "" {
		missing = append(missing, "SLACK_SIGNING_SECRET")
	}

	if len(missing) > 0 {
		return errors.New("missing required config: " + strings.Join(missing, ", "))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}

	return nil
}

// Location resolves the configured timezone. Validate guarantees it parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
