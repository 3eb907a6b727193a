package middlewares

import (
	"context"

	"github.com/torchweb/torch"
)

// DefaultContentSecurityPolicy is the CSP applied when none is configured.
const DefaultContentSecurityPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' https:; connect-src 'self'; frame-ancestors 'none';"

// SecurityConfig configures the security headers middleware.
type SecurityConfig struct {
	ContentSecurityPolicy string
	DisableCSP            bool
}

// SecurityOption configures SecurityConfig.
type SecurityOption func(*SecurityConfig)

// WithContentSecurityPolicy replaces the default CSP.
func WithContentSecurityPolicy(csp string) SecurityOption {
	return func(cfg *SecurityConfig) {
		cfg.ContentSecurityPolicy = csp
	}
}

// WithoutContentSecurityPolicy omits the Content-Security-Policy header.
func WithoutContentSecurityPolicy() SecurityOption {
	return func(cfg *SecurityConfig) {
		cfg.DisableCSP = true
	}
}

// SecurityHeaders returns middleware that stamps the standard hardening
// headers on every response: nosniff, frame denial, the legacy XSS filter
// toggle, referrer and permissions policies, HSTS, and a CSP unless
// disabled.
func SecurityHeaders(opts ...SecurityOption) torch.Middleware {
	cfg := &SecurityConfig{
		ContentSecurityPolicy: DefaultContentSecurityPolicy,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			resp := next(ctx, r)
			resp.SetHeader("X-Content-Type-Options", "nosniff")
			resp.SetHeader("X-Frame-Options", "DENY")
			resp.SetHeader("X-XSS-Protection", "1; mode=block")
			resp.SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")
			resp.SetHeader("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
			resp.SetHeader("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
			if !cfg.DisableCSP {
				resp.SetHeader("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			return resp
		}
	}
}
