package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ziadkadry99/craftfolio/internal/config"
	"github.com/ziadkadry99/craftfolio/internal/db"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `craftfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// resolveDir returns dir relative to base unless it is already absolute.
func resolveDir(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// openCacheDB opens the local storage database under the data directory.
func openCacheDB(cfg *config.Config) (*db.DB, error) {
	path := filepath.Join(cfg.DataDir, "craftfolio.db")
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}
