package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultJWTSecret is only accepted when JOBLY_ENV=development.
const DefaultJWTSecret = "secret-dev"

type Config struct {
	Addr           string        `yaml:"addr"`
	DatabaseURL    string        `yaml:"database_url"`
	RedisURL       string        `yaml:"redis_url"`
	JWTSecret      string        `yaml:"jwt_secret"`
	APITimeout     time.Duration `yaml:"timeout"`
	TokenDuration  time.Duration `yaml:"token_duration"`
	MigrateOnStart bool          `yaml:"migrate_on_start"`
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 24 * time.Hour

	cfg := &Config{
		Addr:          getEnv("JOBLY_ADDR", ":3001"),
		DatabaseURL:   getEnv("JOBLY_DATABASE_URL", "postgresql:///jobly"),
		RedisURL:      getEnv("JOBLY_REDIS_URL", ""),
		JWTSecret:     getEnv("JOBLY_JWT_SECRET", DefaultJWTSecret),
		APITimeout:    apiTimeout,
		TokenDuration: tokenDuration,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the settings the server cannot run without.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.DatabaseURL == "" {
		return errors.New("database_url is required")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.APITimeout)
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive, got %v", c.TokenDuration)
	}
	if c.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}
	if c.JWTSecret == DefaultJWTSecret && os.Getenv("JOBLY_ENV") != "development" {
		return errors.New("refusing the default jwt_secret outside JOBLY_ENV=development")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
