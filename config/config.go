package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App    AppConfig
	Source SourceConfig
	Redis  RedisConfig
	Cache  CacheConfig
}

type AppConfig struct {
	Port            string
	Env             string
	LogLevel        string
	SuggestionLimit int
}

// SourceConfig points at the remote JSON array of doctor records.
type SourceConfig struct {
	URL     string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type CacheConfig struct {
	TTL time.Duration
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SUGGESTION_LIMIT", 3)
	v.SetDefault("SOURCE_URL", DefaultSourceURL)
	v.SetDefault("SOURCE_TIMEOUT", "30s")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	sourceTimeout, err := time.ParseDuration(v.GetString("SOURCE_TIMEOUT"))
	if err != nil {
		sourceTimeout = 30 * time.Second
	}

	cacheTTL, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:            v.GetString("APP_PORT"),
			Env:             v.GetString("APP_ENV"),
			LogLevel:        v.GetString("LOG_LEVEL"),
			SuggestionLimit: v.GetInt("SUGGESTION_LIMIT"),
		},
		Source: SourceConfig{
			URL:     v.GetString("SOURCE_URL"),
			Timeout: sourceTimeout,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
	}

	return config, nil
}
