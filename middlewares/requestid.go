package middlewares

import (
	"context"

	"github.com/google/uuid"

	"github.com/torchweb/torch"
)

// DefaultRequestIDHeader is the header checked for an incoming ID and set
// on the response.
const DefaultRequestIDHeader = "X-Request-ID"

// requestIDKey keys the ID in the request's extension bag.
type requestIDKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	Header    string
	Generator func() string
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeader changes the header name.
func WithRequestIDHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if header != "" {
			cfg.Header = header
		}
	}
}

// WithRequestIDGenerator replaces the UUID generator.
func WithRequestIDGenerator(fn func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if fn != nil {
			cfg.Generator = fn
		}
	}
}

// RequestID returns middleware that ensures every request carries an ID:
// an incoming X-Request-ID header is forwarded verbatim, otherwise a new
// UUID is minted. The ID is stored in the request's extension bag for
// handlers and the Logger middleware, and echoed on the response header.
func RequestID(opts ...RequestIDOption) torch.Middleware {
	cfg := &RequestIDConfig{
		Header:    DefaultRequestIDHeader,
		Generator: uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			id := r.Header.Get(cfg.Header)
			if id == "" {
				id = cfg.Generator()
			}
			r.Set(requestIDKey{}, id)

			resp := next(ctx, r)
			resp.SetHeader(cfg.Header, id)
			return resp
		}
	}
}

// GetRequestID returns the ID stored by the RequestID middleware, or ""
// when the middleware is not installed.
func GetRequestID(r *torch.Request) string {
	if id, ok := r.Get(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
