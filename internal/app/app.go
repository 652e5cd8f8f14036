package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/otusbank/internal/config"
	"github.com/hance08/otusbank/internal/service"
	"github.com/hance08/otusbank/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Config  *config.Config
}

// NewApp initialize logger, database and core logic, then return App entity.
// With inMemory set the database path is ignored and nothing is persisted.
func NewApp(cfg *config.Config, migrationFS fs.FS, inMemory bool) (*App, func(), error) {
	logger, err := cfg.Log.NewLogger(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	var repo store.Repository
	if inMemory {
		repo = store.NewMemoryStore()
	} else {
		dbPath, err := DatabasePath(cfg)
		if err != nil {
			return nil, nil, err
		}

		dbStore, err := store.NewStore(dbPath, migrationFS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo = dbStore
	}

	svc := service.NewService(repo, service.Config{
		StrictTransfers: cfg.Transfers.Strict,
		Logger:          logger,
	})

	cleanup := func() {
		if err := repo.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   repo,
		Config:  cfg,
	}, cleanup, nil
}

// DatabasePath resolves the configured database path, defaulting to the
// application data directory.
func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path)
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, "otusbank.db"), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".otusbank"), nil
	}

	return filepath.Join(configDir, "otusbank"), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if path[1] == '/' || path[1] == '\\' {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// Provider hands commands the application built for the current run. The
// root command only constructs it after flags are parsed.
type Provider func() *App
