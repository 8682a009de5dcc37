// Package observability provides OpenTelemetry tracing and metrics for
// sample runs.
//
// When tracing is disabled nothing is initialised and the global no-op
// providers stay in place, so spans and metric recordings cost nothing.
//
//	shutdown, err := observability.Setup(ctx, cfg.Tracing, "querysamples", version.GetShortVersion(), "development")
//	defer shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("querysamples"))
//	ctx, run := observability.StartRun(ctx, "distinct", runID, metrics)
//	defer run.End(ctx, count, err)
package observability
