package bootstrap

import (
	"time"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/samples"
)

// Option configures the App during creation.
type Option func(*appOptions)

type appOptions struct {
	logger          *logger.Logger
	dataset         *catalog.Dataset
	runnerOpts      []samples.Option
	gracefulTimeout *time.Duration
}

func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the global logger is initialised from the config's Logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithDataset skips loading and uses ds as the catalog.
func WithDataset(ds *catalog.Dataset) Option {
	return func(o *appOptions) {
		o.dataset = ds
	}
}

// WithRunnerOptions passes extra options to the samples.Runner built at startup.
func WithRunnerOptions(opts ...samples.Option) Option {
	return func(o *appOptions) {
		o.runnerOpts = append(o.runnerOpts, opts...)
	}
}

// WithGracefulTimeout sets the maximum duration for the OnStop hooks.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}
