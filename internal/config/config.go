// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Env        string `mapstructure:"APP_ENV"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`
	RedisURL   string `mapstructure:"REDIS_URL"`

	DBMaxOpenConns           int `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns           int `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetimeMinutes int `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`

	// Feed tuning knobs. The candidate limit bounds per-request ranking
	// work; the window is the recency threshold shared by the trending
	// age factor and the latest tier.
	FeedCandidateLimit int `mapstructure:"FEED_CANDIDATE_LIMIT"`
	FeedWindowDays     int `mapstructure:"FEED_WINDOW_DAYS"`
	FeedLikeWeight     int `mapstructure:"FEED_LIKE_WEIGHT"`
	FeedCommentWeight  int `mapstructure:"FEED_COMMENT_WEIGHT"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults
	// cover the full surface.
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "creaverse")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	viper.SetDefault("FEED_CANDIDATE_LIMIT", 500)
	viper.SetDefault("FEED_WINDOW_DAYS", 7)
	viper.SetDefault("FEED_LIKE_WEIGHT", 3)
	viper.SetDefault("FEED_COMMENT_WEIGHT", 2)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.DBName == "" {
		return errors.New("DB_NAME is required")
	}
	if c.FeedCandidateLimit <= 0 {
		return errors.New("FEED_CANDIDATE_LIMIT must be positive")
	}
	if c.FeedWindowDays <= 0 {
		return errors.New("FEED_WINDOW_DAYS must be positive")
	}
	if c.FeedLikeWeight <= 0 || c.FeedCommentWeight <= 0 {
		return errors.New("feed weights must be positive")
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.DBPassword == "password" || c.DBPassword == "" {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
	}

	return nil
}
