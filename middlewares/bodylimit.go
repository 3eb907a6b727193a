package middlewares

import (
	"context"
	"net/http"

	"github.com/torchweb/torch"
)

// DefaultMaxBodySize is the default request body cap in bytes.
const DefaultMaxBodySize int64 = 1 << 20 // 1MB

// BodyLimitConfig configures the body size limit middleware.
type BodyLimitConfig struct {
	MaxBytes int64
	Message  string
}

// BodyLimitOption configures BodyLimitConfig.
type BodyLimitOption func(*BodyLimitConfig)

// WithBodyLimitMessage replaces the 413 response body.
func WithBodyLimitMessage(msg string) BodyLimitOption {
	return func(cfg *BodyLimitConfig) {
		cfg.Message = msg
	}
}

// BodyLimit returns middleware that rejects requests whose buffered body
// exceeds maxBytes with a 413, before any handler runs. A body of exactly
// maxBytes passes.
func BodyLimit(maxBytes int64, opts ...BodyLimitOption) torch.Middleware {
	cfg := &BodyLimitConfig{
		MaxBytes: maxBytes,
		Message:  "Request body too large",
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBodySize
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			if int64(len(r.Body())) > cfg.MaxBytes {
				return torch.Text(http.StatusRequestEntityTooLarge, cfg.Message)
			}
			return next(ctx, r)
		}
	}
}
