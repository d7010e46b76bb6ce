// Package config centralises configuration parsing for the exercise tracker.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config captures runtime configuration values.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	LogLevel       string
	RequestTimeout time.Duration
	Store          string
}

// Address is the listen address for the HTTP server.
func (c Config) Address() string {
	return ":" + c.Port
}

// LoadDotEnv reads a .env file from the working directory, if present.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// NewViper returns a viper instance backed by the environment, with
// defaults for local development.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", "3000")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "exercisetracker")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("store", StoreMongo)
	v.AutomaticEnv()
	return v
}

// Load reads Config out of v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:           v.GetString("port"),
		MongoURI:       v.GetString("mongo_uri"),
		MongoDatabase:  v.GetString("mongo_database"),
		LogLevel:       v.GetString("log_level"),
		RequestTimeout: v.GetDuration("request_timeout"),
		Store:          v.GetString("store"),
	}

	switch cfg.Store {
	case StoreMongo, StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown store %q", cfg.Store)
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("port must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
