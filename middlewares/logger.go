package middlewares

import (
	"context"
	"log/slog"
	"time"

	"github.com/torchweb/torch"
)

// LoggerConfig configures the request logging middleware.
type LoggerConfig struct {
	Level       slog.Level // Level for successful requests (default: Info)
	ErrorLevel  slog.Level // Level for 5xx responses (default: Error)
	SkipPaths   []string   // Paths to skip entirely, e.g. health checks
	LogRequest  bool       // Log on the way in as well as on the way out
	MessageDone string     // Completion message (default: "request completed")
}

// LoggerOption configures LoggerConfig.
type LoggerOption func(*LoggerConfig)

// WithLoggerLevel sets the level for successful requests.
func WithLoggerLevel(level slog.Level) LoggerOption {
	return func(cfg *LoggerConfig) {
		cfg.Level = level
	}
}

// WithLoggerSkipPaths skips logging for exact path matches.
func WithLoggerSkipPaths(paths ...string) LoggerOption {
	return func(cfg *LoggerConfig) {
		cfg.SkipPaths = append(cfg.SkipPaths, paths...)
	}
}

// WithLoggerRequestLine also logs a line when the request enters the
// chain, before any handler runs.
func WithLoggerRequestLine() LoggerOption {
	return func(cfg *LoggerConfig) {
		cfg.LogRequest = true
	}
}

// Logger returns middleware that logs one line per request with method,
// path, status, and elapsed time. 5xx responses log at the error level.
// A request ID set by the RequestID middleware is included when present.
func Logger(log *slog.Logger, opts ...LoggerOption) torch.Middleware {
	cfg := &LoggerConfig{
		Level:       slog.LevelInfo,
		ErrorLevel:  slog.LevelError,
		MessageDone: "request completed",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			if _, ok := skip[r.Path]; ok {
				return next(ctx, r)
			}

			if cfg.LogRequest {
				log.LogAttrs(ctx, cfg.Level, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.Path),
				)
			}

			start := time.Now()
			resp := next(ctx, r)
			elapsed := time.Since(start)

			level := cfg.Level
			if resp.StatusCode >= 500 {
				level = cfg.ErrorLevel
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.Path),
				slog.Int("status", resp.StatusCode),
				slog.Duration("elapsed", elapsed),
			}
			if id := GetRequestID(r); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}
			log.LogAttrs(ctx, level, cfg.MessageDone, attrs...)

			return resp
		}
	}
}
