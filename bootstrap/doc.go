// Package bootstrap wires the sample runner's lifecycle.
//
// NewApp applies config defaults, validates and initialises logging.
// RunTask then sets up tracing, loads the catalog, builds a samples.Runner
// and runs a finite task under SIGINT/SIGTERM cancellation, running the
// OnStop hooks within the graceful timeout once the task returns.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    _, err := app.Runner.RunAll(ctx, cfg.Samples.Default)
//	    return err
//	})
package bootstrap
