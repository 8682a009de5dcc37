package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/querykit/config"
)

// rootOptions holds the persistent flags and the config they produce.
type rootOptions struct {
	configFile string
	envFile    string
	dataFile   string
	logLevel   string
	logFormat  string
	verbose    bool

	cfg *config.Config
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "querysamples",
		Short:         "Run LINQ-style query samples over a product catalog",
		Long:          "querysamples runs named query samples (filtering, ordering, projection, element, partitioning and set operations) over an AdventureWorks product catalog and prints the results.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.envFile, "env-file", "", "path to a .env file")
	flags.StringVar(&opts.dataFile, "data", "", "YAML catalog to load instead of the embedded seed")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (console, json, pretty)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print a header with the sample name and run ID above each result")

	return cmd
}

// load reads the config file and environment, applies flag overrides and
// fills every unset value with its default.
func (o *rootOptions) load() error {
	var loadOpts []config.LoaderOption
	if o.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(o.configFile))
	}
	if o.envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(o.envFile))
	}

	cfg := &config.Config{}
	if err := config.LoadConfig(config.DefaultServiceName, cfg, loadOpts...); err != nil {
		return err
	}

	if o.dataFile != "" {
		cfg.Samples.DataFile = o.dataFile
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	cfg.ApplyDefaults()
	o.cfg = cfg
	return nil
}
