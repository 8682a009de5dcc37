// Command querysamples runs the query samples against the product catalog.
package main

import (
	"context"
	"os"

	"github.com/kbukum/querykit/logger"
)

func main() {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)

	registerRunCmd(rootCmd, opts)
	registerListCmd(rootCmd)
	registerVersionCmd(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("querysamples failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}
