package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/torchweb/torch"
)

// DefaultStackSize is the maximum captured stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	Logger            *slog.Logger
	StackSize         int
	DisablePrintStack bool
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverLogger sets the logger for recovered panics.
func WithRecoverLogger(log *slog.Logger) RecoverOption {
	return func(cfg *RecoverConfig) {
		if log != nil {
			cfg.Logger = log
		}
	}
}

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

// WithRecoverDisablePrintStack omits stack traces from logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover returns middleware that converts a panicking handler into a 500
// response, so one bad request cannot take the process down. The panic
// value and, unless disabled, a truncated stack trace are logged.
func Recover(opts ...RecoverOption) torch.Middleware {
	cfg := &RecoverConfig{
		Logger:    slog.New(slog.DiscardHandler),
		StackSize: DefaultStackSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) (resp *torch.Response) {
			defer func() {
				if rec := recover(); rec != nil {
					if cfg.DisablePrintStack {
						cfg.Logger.ErrorContext(ctx, "panic recovered",
							slog.Any("panic", rec),
							slog.String("path", r.Path),
						)
					} else {
						stack := make([]byte, cfg.StackSize)
						n := runtime.Stack(stack, false)
						cfg.Logger.ErrorContext(ctx, "panic recovered",
							slog.Any("panic", rec),
							slog.String("path", r.Path),
							slog.String("stack", string(stack[:n])),
						)
					}
					resp = torch.Text(http.StatusInternalServerError, "Internal Server Error")
				}
			}()
			return next(ctx, r)
		}
	}
}
