package logger

import (
	"context"
	"log/slog"
)

// Extractor pulls a request-scoped attribute out of a context on each log
// call, e.g. a request ID placed there by a transport bridge.
type Extractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler injects extractor attributes into every record before
// delegating. Extraction runs per call so request-scoped values stay
// fresh.
type contextHandler struct {
	next       slog.Handler
	extractors []Extractor
}

// Decorate wraps next with the given extractors. Nil extractors are
// dropped; with none left the handler is returned unwrapped.
func Decorate(next slog.Handler, extractors ...Extractor) slog.Handler {
	clean := make([]Extractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return next
	}
	return &contextHandler{next: next, extractors: clean}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
