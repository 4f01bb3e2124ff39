// Package app composes the tuning console with fx: logger, store,
// settings tree, and TUI, plus the lifecycle that saves on shutdown.
package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/joeri-hu/tracktune/internal/config"
	"github.com/joeri-hu/tracktune/internal/logging"
	"github.com/joeri-hu/tracktune/internal/paths"
	"github.com/joeri-hu/tracktune/internal/store"
	"github.com/joeri-hu/tracktune/internal/tui"
)

// Params holds the resolved rig options passed to the fx module.
type Params struct {
	Rig   string
	UseDB bool // persist in SQLite instead of TOML
}

// Module returns the fx module for the console, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("tracktune",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideStore,
			provideConfig,
			provideApp,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(paths.LogPath(p.Rig), p.Rig)
}

func provideStore(p Params, logger *zap.Logger) (tui.Saver, error) {
	if err := paths.EnsureDir(p.Rig); err != nil {
		return nil, err
	}
	if p.UseDB {
		db, err := store.Open(paths.DBPath(p.Rig))
		if err != nil {
			return nil, err
		}
		logger.Info("store opened", zap.String("backend", "sqlite"), zap.Int("keys", db.Len()))
		return db, nil
	}
	f, err := store.OpenFile(paths.SettingsPath(p.Rig))
	if err != nil {
		return nil, err
	}
	logger.Info("store opened", zap.String("backend", "toml"), zap.Int("keys", f.Len()))
	return f, nil
}

func provideConfig(st tui.Saver, logger *zap.Logger) *config.Config {
	cfg := config.Defaults()
	store.Load(st, store.Items(cfg.Items()))
	logger.Info("settings loaded", zap.Int("items", len(cfg.Items())))
	return cfg
}

func provideApp(p Params, cfg *config.Config, st tui.Saver, logger *zap.Logger) *tui.App {
	return tui.NewApp(p.Rig, cfg, st, logger)
}

func registerLifecycle(lc fx.Lifecycle, sd fx.Shutdowner, a *tui.App, cfg *config.Config, st tui.Saver, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := a.Run(); err != nil {
					logger.Error("console error", zap.Error(err))
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			a.Stop()
			// Persist the tree as it stands; the console exits saved.
			store.Save(st, store.Items(cfg.Items()))
			if err := st.Flush(); err != nil {
				logger.Warn("flush on exit failed", zap.Error(err))
			}
			if c, ok := st.(*store.DB); ok {
				if err := c.Close(); err != nil {
					logger.Warn("error closing store", zap.Error(err))
				}
			}
			logger.Info("console stopped")
			return nil
		},
	})
}
