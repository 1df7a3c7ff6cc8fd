package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the newsfetch command configuration loaded from the
// environment. The library itself takes no configuration; this only feeds
// the command.
type Config struct {
	APIKey         string        `mapstructure:"newsapi_key"`
	Endpoint       string        `mapstructure:"newsapi_endpoint"`
	Country        string        `mapstructure:"newsapi_country"`
	LogLevel       string        `mapstructure:"log_level"`
	TimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables, with a .env file as a
// convenience for local use.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("newsapi_key", "")
	v.SetDefault("newsapi_endpoint", "top-headlines")
	v.SetDefault("newsapi_country", "us")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout_seconds", 10)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("newsapi_key is required (set NEWSAPI_KEY)")
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, errors.New("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}
