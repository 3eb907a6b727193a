package logger

import (
	"log/slog"
	"os"
)

// New creates a JSON logger writing to stdout at Info level, with the
// given context extractors applied on every log call.
func New(extractors ...Extractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(Decorate(h, extractors...))
}

// NewNope returns a logger that discards everything. Useful as a default
// and in tests.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
