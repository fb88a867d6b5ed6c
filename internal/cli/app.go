// Package cli wires configuration, logging and the tiling engine for CLI commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/tiler/internal/app/tiling"
	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/build"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	// Manager is nil when the config file could not be loaded.
	Manager *config.Manager
	// ConfigErr records why the config fell back to defaults.
	ConfigErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	theme := styles.NewTheme(cfg)

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	} else {
		logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")
	}

	return &App{
		Config:    cfg,
		Theme:     theme,
		Manager:   mgr,
		ConfigErr: cfgErr,
		ctx:       ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// LogToFile redirects logging to the state log file. Used while a
// full-screen preview owns the terminal.
func (a *App) LogToFile() (string, error) {
	path, err := config.GetLogFile()
	if err != nil {
		return "", fmt.Errorf("resolve log file: %w", err)
	}
	logger, cleanup, err := logging.NewWithFile(logging.Config{
		Level:      logging.ParseLevel(a.Config.Logging.Level),
		Format:     a.Config.Logging.Format,
		TimeFormat: "15:04:05",
	}, path)
	if err != nil {
		return "", err
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	return path, nil
}

// EngineOptions returns engine options derived from the loaded config.
// A negative gap keeps the configured value.
func (a *App) EngineOptions(gap float64, observer port.TreeObserver) tiling.Options {
	if gap < 0 {
		gap = a.Config.Layout.Gap
	}
	return tiling.Options{
		Gap:          gap,
		NoGap:        gap == 0,
		DefaultTitle: a.Config.Tiles.DefaultTitle,
		ValidateTree: a.Config.Debug.ValidateTree,
		Observer:     observer,
	}
}

// NewEngine creates an engine configured from the loaded config.
func (a *App) NewEngine(gap float64) *tiling.Engine {
	return tiling.NewEngine(a.EngineOptions(gap, nil))
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file is unreadable or invalid.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
