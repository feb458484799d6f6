// Package config reads runtime settings from the environment and an
// optional .env file.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime settings shared by the CLI and the server.
type Config struct {
	DBPath      string // empty means the default path
	CatalogPath string // empty means the embedded catalog
	DevMode     bool
	Port        int
	ServerURL   string // e.g. http://localhost:8080
	Project     string // project id to ask about when none is given
}

// Load reads a .env file from the working directory, if present, and then
// the environment. Variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv creates a Config from environment variables.
func FromEnv() Config {
	return Config{
		DBPath:      os.Getenv("PA_DB"),
		CatalogPath: os.Getenv("PA_CATALOG"),
		DevMode:     os.Getenv("PA_DEV_MODE") == "true",
		Port:        envInt("PA_PORT", 8080),
		ServerURL:   envOrDefault("PA_SERVER_URL", ""),
		Project:     os.Getenv("PA_PROJECT"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer setting, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
