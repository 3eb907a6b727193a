// Package logger builds the slog loggers used by torch applications:
// JSON output to stdout, per-call context extractors for request-scoped
// attributes, optional fan-out to Sentry, and a noop logger for tests.
package logger
