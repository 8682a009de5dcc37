// Package logger provides structured logging for querykit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. Loggers pick up the active trace and span IDs
// and the sample run ID from a context.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.WithComponent("samples")
//	log.Info("sample finished", logger.Fields("sample", "distinct", "count", 7))
package logger
