// Package config loads the environment and the layered viper configuration.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads a .env file from the working directory or its parent, once.
// A missing file is not an error; it returns the file that was loaded, if any.
func LoadEnv() string {
	var loaded string
	envOnce.Do(func() {
		loaded = loadEnvFrom(".env", filepath.Join("..", ".env"))
	})
	return loaded
}

// loadEnvFrom loads the first existing candidate. Variables already set in
// the process environment win.
func loadEnvFrom(candidates ...string) string {
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return ""
		}
		return envFile
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
