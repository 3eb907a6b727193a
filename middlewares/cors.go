package middlewares

import (
	"context"
	"strconv"
	"strings"

	"github.com/torchweb/torch"
)

// Default CORS header values.
const (
	DefaultCORSOrigin  = "*"
	DefaultCORSMethods = "GET, POST, PUT, DELETE, OPTIONS"
	DefaultCORSHeaders = "Content-Type, Authorization"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods []string
	AllowHeaders []string
	MaxAge       int // Preflight cache seconds, 0 omits the header
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithCORSOrigin sets the Access-Control-Allow-Origin value.
func WithCORSOrigin(origin string) CORSOption {
	return func(cfg *CORSConfig) {
		if origin != "" {
			cfg.AllowOrigin = origin
		}
	}
}

// WithCORSMethods replaces the allowed methods list.
func WithCORSMethods(methods ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowMethods = methods
	}
}

// WithCORSHeaders replaces the allowed headers list.
func WithCORSHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithCORSMaxAge sets the Access-Control-Max-Age header in seconds.
func WithCORSMaxAge(seconds int) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = seconds
	}
}

// CORS returns middleware that stamps CORS headers on every response.
// This is the permissive variant: the configured origin (default "*") is
// sent unconditionally, with no per-request origin reflection.
func CORS(opts ...CORSOption) torch.Middleware {
	cfg := &CORSConfig{
		AllowOrigin: DefaultCORSOrigin,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	methods := DefaultCORSMethods
	if len(cfg.AllowMethods) > 0 {
		methods = strings.Join(cfg.AllowMethods, ", ")
	}
	headers := DefaultCORSHeaders
	if len(cfg.AllowHeaders) > 0 {
		headers = strings.Join(cfg.AllowHeaders, ", ")
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			resp := next(ctx, r)
			resp.SetHeader("Access-Control-Allow-Origin", cfg.AllowOrigin)
			resp.SetHeader("Access-Control-Allow-Methods", methods)
			resp.SetHeader("Access-Control-Allow-Headers", headers)
			if cfg.MaxAge > 0 {
				resp.SetHeader("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
			return resp
		}
	}
}
