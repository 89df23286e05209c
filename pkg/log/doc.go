// Package log records remote calls made to the test framework.
//
// This is separate from operational logging (slog). The call log is a
// machine-readable trace of every routine invoked against the database,
// every compatibility verdict and every reporter lifecycle step, so version
// skew between client and framework can be diagnosed after the fact.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write a CBOR file
//	fl, _ := log.NewFileLogger("/tmp/session.ulog")
//	defer fl.Close()
//
//	// Both
//	cfg.EventLogger = log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Log files are a sequence of CBOR-encoded Event values (.ulog). The
// utplsql-log command views and summarizes them.
package log
