package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/querykit/report"
	"github.com/kbukum/querykit/samples"
)

func registerListCmd(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.NewWriter(cmd.OutOrStdout(), false).Samples(samples.All())
		},
	})
}
