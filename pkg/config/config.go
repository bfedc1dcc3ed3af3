package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the CLI.
type Config struct {
	BaseURL   string
	CacheDir  string
	DBPath    string
	ExportDir string
}

// Load reads settings from the environment, after loading an optional .env
// file. Anything unset falls back to a ~/.strips default.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:   os.Getenv("STRIPS_BASE_URL"),
		CacheDir:  os.Getenv("STRIPS_CACHE_DIR"),
		DBPath:    os.Getenv("STRIPS_DB_PATH"),
		ExportDir: os.Getenv("STRIPS_EXPORT_DIR"),
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://xkcd.com"
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(home, ".strips", "cache")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, ".strips", "strips.db")
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = filepath.Join(home, "Downloads")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("BaseURL is required")
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("BaseURL must not end with '/': %s", c.BaseURL)
	}
	if c.CacheDir == "" {
		return fmt.Errorf("CacheDir is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DBPath is required")
	}
	return nil
}
