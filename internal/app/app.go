package app

import (
	"fmt"
	"os"

	"github.com/casey/apptrack/internal/config"
	"github.com/casey/apptrack/internal/presenter"
	"github.com/casey/apptrack/internal/repository"
	"github.com/casey/apptrack/internal/store"
)

// App is the dependency injection container for all application components
type App struct {
	Config    *config.Config
	Store     *store.Store
	Apps      repository.AppRepository
	Presenter *presenter.Presenter
}

// New creates a new App instance from the default config path.
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	st := store.New(cfg.Data.Path)

	return &App{
		Config:    cfg,
		Store:     st,
		Apps:      repository.NewAppRepo(st),
		Presenter: presenter.New(os.Stdout),
	}, nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
