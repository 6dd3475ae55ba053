// Package logging assembles structured slog loggers and formatting helpers used
// across sndconvert.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so worker code can tag log lines
// with the run identifier, worker name, and file being converted. Console
// output gets ANSI level colors only when it is written to a terminal; file
// sinks always receive plain text. The package also provides a no-op logger
// for tests and wiring code that cannot fail, and prunes per-run log files
// older than the configured retention window.
package logging
