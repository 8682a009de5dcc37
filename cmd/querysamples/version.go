package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/querykit/version"
)

func registerVersionCmd(rootCmd *cobra.Command) {
	var short bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display querysamples version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Short())
				return err
			}
			return info.Write(cmd.OutOrStdout(), time.Now())
		},
	}
	versionCmd.Flags().BoolVar(&short, "short", false, "print only the version")

	rootCmd.AddCommand(versionCmd)
}
