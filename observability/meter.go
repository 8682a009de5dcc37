package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/querykit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricSampleRuns     = "sample.runs"
	MetricSampleDuration = "sample.duration"
	MetricSampleResults  = "sample.results"
)

// Metrics holds the instruments recorded for each sample run.
type Metrics struct {
	runs     metric.Int64Counter
	duration metric.Float64Histogram
	results  metric.Int64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runs, err := meter.Int64Counter(MetricSampleRuns,
		metric.WithDescription("Number of sample runs by sample and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricSampleRuns, err)
	}

	duration, err := meter.Float64Histogram(MetricSampleDuration,
		metric.WithDescription("Duration of sample runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricSampleDuration, err)
	}

	results, err := meter.Int64Histogram(MetricSampleResults,
		metric.WithDescription("Number of records a sample produced"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricSampleResults, err)
	}

	return &Metrics{
		runs:     runs,
		duration: duration,
		results:  results,
	}, nil
}

// RecordSample records one finished sample run.
func (m *Metrics) RecordSample(ctx context.Context, sample, status string, count int, duration time.Duration) {
	name := attribute.String("sample", sample)
	m.runs.Add(ctx, 1, metric.WithAttributes(name, attribute.String("status", status)))
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(name))
	m.results.Record(ctx, int64(count), metric.WithAttributes(name))
}
