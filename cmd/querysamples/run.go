package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/querykit/bootstrap"
	"github.com/kbukum/querykit/errors"
	"github.com/kbukum/querykit/report"
	"github.com/kbukum/querykit/samples"
)

func registerRunCmd(rootCmd *cobra.Command, opts *rootOptions) {
	var all bool

	runCmd := &cobra.Command{
		Use:   "run [sample...]",
		Short: "Run samples by name",
		Long:  "Run the named samples in order. Without names the configured defaults run; --all runs every sample.",
		Example: `  querysamples run distinct
  querysamples run first single-or-default --verbose
  querysamples run --all --data catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := sampleNames(args, all, opts.cfg.Samples.Default)
			if err != nil {
				return err
			}

			app, err := bootstrap.NewApp(opts.cfg)
			if err != nil {
				return err
			}

			w := report.NewWriter(cmd.OutOrStdout(), opts.verbose)
			return app.RunTask(cmd.Context(), func(ctx context.Context) error {
				results, runErr := app.Runner.RunAll(ctx, names)
				if err := w.Results(results); err != nil {
					return err
				}
				return runErr
			})
		},
	}
	runCmd.Flags().BoolVar(&all, "all", false, "run every sample in catalog order")

	rootCmd.AddCommand(runCmd)
}

// sampleNames resolves which samples to run and rejects unknown names
// before anything is loaded.
func sampleNames(args []string, all bool, defaults []string) ([]string, error) {
	if all && len(args) > 0 {
		return nil, errors.InvalidInput("samples", "name samples or pass --all, not both")
	}

	var names []string
	switch {
	case all:
		names = samples.Names()
	case len(args) > 0:
		names = args
	default:
		names = defaults
	}

	for _, name := range names {
		if _, err := samples.Lookup(name); err != nil {
			return nil, err
		}
	}
	return names, nil
}
