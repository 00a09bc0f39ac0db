// Package config loads worktime settings from defaults, an optional YAML
// file, an optional .env file and the environment, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/alexanderramin/worktime/internal/intent"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "worktime.yaml"

type Config struct {
	BotToken            string               `yaml:"bot_token"`
	AdminID             int64                `yaml:"admin_id"`
	DBPath              string               `yaml:"db_path"`
	Timezone            string               `yaml:"timezone"`
	LogLevel            string               `yaml:"log_level"`
	PollTimeoutSec      int                  `yaml:"poll_timeout_sec"`
	Workers             int                  `yaml:"workers"`
	CheckoutMatch       domain.CheckoutMatch `yaml:"checkout_match"`
	RecoverOpenSessions bool                 `yaml:"recover_open_sessions"`
	Vocabulary          intent.Vocabulary    `yaml:"vocabulary"`
}

func DefaultConfig() Config {
	return Config{
		DBPath:              "worktime.db",
		Timezone:            "Europe/Kiev",
		LogLevel:            "info",
		PollTimeoutSec:      60,
		Workers:             4,
		CheckoutMatch:       domain.MatchRecord,
		RecoverOpenSessions: true,
		Vocabulary:          intent.DefaultVocabulary(),
	}
}

// Load reads path (a missing file means defaults), then .env from the
// working directory, then environment variables. Vocabulary lists given in
// the file replace the defaults entirely.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Variables already set in the environment win over .env.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := firstEnv("WORKTIME_BOT_TOKEN", "TELEGRAM_BOT_TOKEN"); v != "" {
		c.BotToken = v
	}
	if v := firstEnv("WORKTIME_ADMIN_ID", "ADMIN_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("admin id %q: %w", v, err)
		}
		c.AdminID = id
	}
	if v := os.Getenv("WORKTIME_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("WORKTIME_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("WORKTIME_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WORKTIME_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("workers %q: %w", v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv("WORKTIME_CHECKOUT_MATCH"); v != "" {
		c.CheckoutMatch = domain.CheckoutMatch(v)
	}
	if v := os.Getenv("WORKTIME_RECOVER_OPEN_SESSIONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("recover open sessions %q: %w", v, err)
		}
		c.RecoverOpenSessions = b
	}
	return nil
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks settings that would otherwise fail late.
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.PollTimeoutSec < 0 {
		return fmt.Errorf("poll_timeout_sec must not be negative, got %d", c.PollTimeoutSec)
	}
	switch c.CheckoutMatch {
	case domain.MatchRecord, domain.MatchDay:
	default:
		return fmt.Errorf("checkout_match must be %q or %q, got %q", domain.MatchRecord, domain.MatchDay, c.CheckoutMatch)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
