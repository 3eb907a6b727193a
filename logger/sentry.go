package logger

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string `yaml:"dsn" env:"SENTRY_DSN"`
	Environment string `yaml:"environment" env:"SENTRY_ENVIRONMENT"`
	// MinLevel picks which levels ship to Sentry as logs. Errors always
	// create Sentry issues.
	MinLevel slog.Level `yaml:"-"`
}

// NewWithSentry creates a logger that writes JSON to stdout and mirrors
// warnings and errors to Sentry. With an empty DSN, or if Sentry fails to
// initialize, it degrades to stdout only.
func NewWithSentry(cfg SentryConfig, extractors ...Extractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if cfg.DSN == "" {
		return slog.New(Decorate(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("sentry init failed", slog.String("error", err.Error()))
		return slog.New(Decorate(stdout, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(Decorate(fanout(stdout, sentryHandler), extractors...))
}

// fanoutHandler delivers each record to every wrapped handler.
type fanoutHandler struct {
	handlers []slog.Handler
}

func fanout(handlers ...slog.Handler) slog.Handler {
	return &fanoutHandler{handlers: handlers}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, rec.Level) {
			if err := hh.Handle(ctx, rec.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		next[i] = hh.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		next[i] = hh.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}
