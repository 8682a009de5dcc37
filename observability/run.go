package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/querykit/errors"
)

// Run statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Run tracks the span and timing of one sample execution.
type Run struct {
	Sample    string
	RunID     string
	StartTime time.Time
	Metrics   *Metrics

	span     trace.Span
	ended    bool
	duration time.Duration
}

// StartRun starts a span for a sample run. If metrics is nil, metric
// recording is skipped.
func StartRun(ctx context.Context, sample, runID string, metrics *Metrics) (context.Context, *Run) {
	ctx, span := StartSpan(ctx, SpanSampleRun, trace.WithAttributes(
		attribute.String(AttrSample, sample),
		attribute.String(AttrRunID, runID),
	))
	return ctx, &Run{
		Sample:    sample,
		RunID:     runID,
		StartTime: time.Now(),
		Metrics:   metrics,
		span:      span,
	}
}

// End closes the span and records the run. count is the number of records
// the sample produced.
func (r *Run) End(ctx context.Context, count int, err error) string {
	duration := time.Since(r.StartTime)
	r.ended, r.duration = true, duration

	status := StatusOK
	if err != nil {
		status = StatusError
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
		r.span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
		if code := errors.Code(err); code != "" {
			r.span.SetAttributes(attribute.String(AttrErrorCode, string(code)))
		}
	}

	r.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrResultCount, count),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	r.span.End()

	if r.Metrics != nil {
		r.Metrics.RecordSample(ctx, r.Sample, status, count, duration)
	}
	return status
}

// Duration returns the elapsed time since the run started. After End it
// is the duration End recorded on the span and metrics.
func (r *Run) Duration() time.Duration {
	if r.ended {
		return r.duration
	}
	return time.Since(r.StartTime)
}
