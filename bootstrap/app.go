package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/config"
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
	"github.com/kbukum/querykit/samples"
	"github.com/kbukum/querykit/version"
)

// SourceEmbedded names the built-in seed as a data source.
const SourceEmbedded = "embedded"

// App owns the runner's configuration and the resources built from it.
// Dataset and Runner are populated by RunTask before the task starts.
type App struct {
	Name    string
	Version string
	Cfg     *config.Config
	Logger  *logger.Logger
	Summary *Summary

	Dataset *catalog.Dataset
	Runner  *samples.Runner

	gracefulTimeout time.Duration
	runnerOpts      []samples.Option

	onStart []Hook
	onStop  []Hook
}

// NewApp creates a new application instance from cfg.
// It applies defaults, validates the config, and initializes the logger.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	app := &App{
		Name:            cfg.Base.Name,
		Version:         version.GetShortVersion(),
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	app.Dataset = o.dataset
	app.runnerOpts = o.runnerOpts

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(&cfg.Logging, cfg.Base.Name)
		app.Logger = logger.GetGlobalLogger()
	}

	app.Summary = NewSummary(app.Name, app.Version, cfg.Base.Environment)
	return app, nil
}

// RunTask executes a finite task with the full lifecycle. The task's context
// is canceled on SIGINT/SIGTERM. OnStop hooks run after the task returns,
// whether or not it failed.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.startup(ctx); err != nil {
		if stopErr := a.stop(); stopErr != nil {
			a.Logger.Warn("Shutdown after failed startup reported errors", logger.ErrorFields("shutdown", stopErr))
		}
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("Received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := a.stop(); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

// startup sets up tracing, loads the catalog and builds the runner.
func (a *App) startup(ctx context.Context) error {
	start := time.Now()

	shutdown, err := observability.Setup(ctx, a.Cfg.Tracing, a.Name, a.Version, a.Cfg.Base.Environment)
	if err != nil {
		return fmt.Errorf("observability setup failed: %w", err)
	}
	a.OnStop(Hook(shutdown))
	a.Summary.TracingEnabled = a.Cfg.Tracing.Enabled

	metrics, err := observability.NewMetrics(observability.Meter(a.Name))
	if err != nil {
		return fmt.Errorf("metrics setup failed: %w", err)
	}

	if a.Dataset == nil {
		ds, err := a.loadDataset(ctx)
		if err != nil {
			return err
		}
		a.Dataset = ds
	} else if a.Summary.DataSource == "" {
		a.Summary.DataSource = "provided"
	}
	a.Summary.Products = len(a.Dataset.Products)
	a.Summary.SalesLines = len(a.Dataset.Sales)

	opts := append([]samples.Option{
		samples.WithMetrics(metrics),
		samples.WithLogger(a.Logger.WithComponent("samples")),
	}, a.runnerOpts...)
	a.Runner = samples.NewRunner(a.Dataset, a.Cfg.Samples, opts...)

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	a.Summary.StartupDuration = time.Since(start)
	a.Summary.Display(a.Logger)
	return nil
}

// loadDataset reads the configured data file, or the embedded seed when
// none is set, inside a catalog.load span.
func (a *App) loadDataset(ctx context.Context) (*catalog.Dataset, error) {
	source := a.Cfg.Samples.DataFile
	if source == "" {
		source = SourceEmbedded
	}
	a.Summary.DataSource = source

	ctx, span := observability.StartSpan(ctx, observability.SpanLoadData)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrDataSource, source)

	var (
		ds  *catalog.Dataset
		err error
	)
	if source == SourceEmbedded {
		ds, err = catalog.LoadSeed()
	} else {
		ds, err = catalog.LoadFile(source)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	a.Logger.Debug("Catalog loaded", logger.Fields(
		logger.FieldPath, source,
		logger.FieldCount, len(ds.Products),
	))
	return ds, nil
}

// stop runs the OnStop hooks within the graceful timeout.
func (a *App) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	if err := runHooks(ctx, reversed(a.onStop)); err != nil {
		a.Logger.Error("OnStop hook error", logger.ErrorFields("shutdown", err))
		return err
	}
	a.Logger.Debug("Application shutdown complete")
	return nil
}
