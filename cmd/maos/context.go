// App is the dependency container backing every subcommand: lazily
// loaded config, metrics, and dispatcher, each behind its own sync.Once,
// grounded on the reference implementation's CliContext
// (maos/src/cli/context.rs) — its OnceLock<Arc<T>> fields rendered here as
// a sync.Once plus cached value (and error) per subsystem, since argument parsing and
// --help/--version must never touch any of these (§5 startup discipline).
package main

import (
	"sync"

	"github.com/maos-project/maos/internal/config"
	"github.com/maos-project/maos/internal/dispatch"
	"github.com/maos-project/maos/internal/errs"
	"github.com/maos-project/maos/internal/handlers"
	"github.com/maos-project/maos/internal/logging"
	"github.com/maos-project/maos/internal/metrics"
	"github.com/maos-project/maos/internal/pathguard"
)

// App bundles the process's lazily initialized subsystems.
type App struct {
	configPath string

	configOnce sync.Once
	config     *config.Config
	configErr  *errs.Error

	metricsOnce sync.Once
	metricsColl *metrics.Collector

	dispatcherOnce sync.Once
	dispatcher     *dispatch.Dispatcher
	dispatcherErr  *errs.Error
}

// NewApp returns an App that will load its configuration from configPath
// (empty string falls back to compiled-in defaults) the first time it is
// needed.
func NewApp(configPath string) *App {
	return &App{configPath: configPath}
}

// Config returns the merged configuration, loading and validating it on
// first use.
func (a *App) Config() (*config.Config, *errs.Error) {
	a.configOnce.Do(func() {
		a.config, a.configErr = config.Load(a.configPath)
	})
	return a.config, a.configErr
}

// Metrics returns the process-wide metrics collector, constructing it on
// first use.
func (a *App) Metrics() *metrics.Collector {
	a.metricsOnce.Do(func() { a.metricsColl = metrics.New() })
	return a.metricsColl
}

// Dispatcher returns the process-wide dispatcher, constructing the
// handler registry (and therefore loading config) on first use.
func (a *App) Dispatcher() (*dispatch.Dispatcher, *errs.Error) {
	a.dispatcherOnce.Do(func() {
		cfg, cfgErr := a.Config()
		if cfgErr != nil {
			a.dispatcherErr = cfgErr
			return
		}
		logging.Init(cfg.Logging)

		workspaceRoot, absErr := cfg.WorkspaceRootAbs()
		if absErr != nil {
			a.dispatcherErr = errs.ConfigError(absErr.Error())
			return
		}

		guard := pathguard.New([]string{workspaceRoot}, cfg.Security.BlockedPaths)
		registry := dispatch.NewRegistry(handlers.Deps{
			Guard:   guard,
			Metrics: a.Metrics(),
		})
		a.dispatcher = dispatch.NewDispatcher(registry, a.Metrics())
	})
	if a.dispatcherErr != nil {
		return nil, a.dispatcherErr
	}
	return a.dispatcher, nil
}
