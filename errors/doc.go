// Package errors provides the structured error type shared by querykit
// packages. Every error carries a machine-readable code so callers can
// classify cardinality failures (not found, multiple matches) without
// string matching.
package errors
