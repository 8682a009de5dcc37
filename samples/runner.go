package samples

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kbukum/querykit/catalog"
	"github.com/kbukum/querykit/config"
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
)

// Runner executes samples against a dataset.
type Runner struct {
	dataset *catalog.Dataset
	params  config.SamplesConfig
	metrics *observability.Metrics
	log     *logger.Logger
	newID   func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithMetrics records every run on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithLogger replaces the component logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithRunIDs replaces the run ID generator.
func WithRunIDs(next func() string) Option {
	return func(r *Runner) { r.newID = next }
}

// NewRunner creates a runner over ds. params should already have defaults
// applied.
func NewRunner(ds *catalog.Dataset, params config.SamplesConfig, opts ...Option) *Runner {
	r := &Runner{
		dataset: ds,
		params:  params,
		log:     logger.WithComponent("samples"),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named sample on a fresh copy of the dataset.
func (r *Runner) Run(ctx context.Context, name string) (*Result, error) {
	sample, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	runID := r.newID()
	ctx = logger.ContextWithRunID(ctx, runID)
	ctx, run := observability.StartRun(ctx, sample.Name, runID, r.metrics)
	log := r.log.WithContext(ctx).WithFields(logger.Fields(logger.FieldSample, sample.Name))
	log.Debug("sample started")

	data := r.dataset.Clone()
	res, err := sample.Run(&Context{
		Products: data.Products,
		Sales:    data.Sales,
		Params:   r.params,
	})

	count := 0
	if res != nil {
		count = res.Count()
	}
	status := run.End(ctx, count, err)
	fields := logger.SampleFields(sample.Name, status, count, run.Duration())

	if err != nil {
		log.Error("sample failed", logger.MergeWithError(fields, err))
		return nil, fmt.Errorf("running sample %s: %w", sample.Name, err)
	}
	log.Info("sample finished", fields)

	res.Sample = sample.Name
	res.RunID = runID
	return res, nil
}

// RunAll runs the named samples in order, stopping at the first failure
// or when ctx is cancelled.
func (r *Runner) RunAll(ctx context.Context, names []string) ([]*Result, error) {
	results := make([]*Result, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.Run(ctx, name)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
