package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebenson/strips/pkg/config"
	"github.com/ebenson/strips/pkg/data"
	"github.com/ebenson/strips/pkg/services"
	"github.com/ebenson/strips/pkg/sources"
)

// deps wires the store, source, library and navigator for one command run.
type deps struct {
	cfg     config.Config
	store   *data.FileStore
	library *data.Library
	nav     *services.Navigator
}

func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := data.NewFileStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	library, err := data.OpenLibrary(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	source := sources.NewXKCD(cfg.BaseURL)
	nav := services.NewNavigator(source, store, library)

	return &deps{cfg: cfg, store: store, library: library, nav: nav}, nil
}

func (d *deps) Close() {
	d.library.Close()
}
