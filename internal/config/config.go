package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds everything the client reads from its environment.
type Config struct {
	// APIURL is the dashboard API base, including the /api prefix.
	APIURL string
	// DataDir holds the session files and the debug log.
	DataDir string
}

const defaultAPIURL = "http://localhost:3100/api"

// Load reads configuration from a .env file (when present) and the
// process environment.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	godotenv.Load() //nolint:errcheck

	dataDir := os.Getenv("DECKHAND_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".deckhand")
	}

	return &Config{
		APIURL:  getEnv("DECKHAND_API_URL", defaultAPIURL),
		DataDir: dataDir,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
