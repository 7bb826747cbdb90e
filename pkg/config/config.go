package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application. Everything has a
// default; the site runs with no environment at all.
type Config struct {
	Port            string
	Env             string
	ViewsDir        string
	PublicDir       string
	SuggestionCount int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		ViewsDir:        getEnv("VIEWS_DIR", "./views"),
		PublicDir:       getEnv("PUBLIC_DIR", "./public"),
		SuggestionCount: 4,
	}

	if s := os.Getenv("SUGGESTION_COUNT"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid SUGGESTION_COUNT %q", s)
		}
		cfg.SuggestionCount = n
	}

	return cfg, nil
}

// ServerAddress returns the listen address with port.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
