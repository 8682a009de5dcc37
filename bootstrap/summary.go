package bootstrap

import (
	"time"

	"github.com/kbukum/querykit/logger"
)

// Summary describes what startup produced.
type Summary struct {
	Name            string
	Version         string
	Environment     string
	DataSource      string
	Products        int
	SalesLines      int
	TracingEnabled  bool
	StartupDuration time.Duration
}

// NewSummary creates a summary for the named application.
func NewSummary(name, version, environment string) *Summary {
	return &Summary{Name: name, Version: version, Environment: environment}
}

// Fields returns the summary as structured log fields.
func (s *Summary) Fields() map[string]any {
	return logger.Fields(
		"name", s.Name,
		"version", s.Version,
		"environment", s.Environment,
		"data_source", s.DataSource,
		"products", s.Products,
		"sales_lines", s.SalesLines,
		"tracing", s.TracingEnabled,
		logger.FieldDuration, s.StartupDuration.Milliseconds(),
	)
}

// Display logs the summary at debug level.
func (s *Summary) Display(l *logger.Logger) {
	l.Debug("Startup complete", s.Fields())
}
