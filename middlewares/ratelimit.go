package middlewares

import (
	"context"
	"net/http"

	"golang.org/x/sync/semaphore"

	"github.com/torchweb/torch"
)

// DefaultRateLimitPermits is the default in-flight request cap.
const DefaultRateLimitPermits = 100

// RateLimitConfig configures the concurrency limiter.
type RateLimitConfig struct {
	Permits int64 // Maximum requests in flight at once
	Message string
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimitMessage replaces the 429 response body.
func WithRateLimitMessage(msg string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.Message = msg
	}
}

// RateLimit returns middleware that caps concurrent in-flight requests
// with a permit pool. A request that cannot take a permit immediately is
// rejected with 429; the permit returns to the pool when the request
// finishes. This bounds concurrency, not wall-clock request rate; see
// Throttle for the latter.
func RateLimit(permits int, opts ...RateLimitOption) torch.Middleware {
	cfg := &RateLimitConfig{
		Permits: int64(permits),
		Message: "Rate limit exceeded",
	}
	if cfg.Permits <= 0 {
		cfg.Permits = DefaultRateLimitPermits
	}
	for _, opt := range opts {
		opt(cfg)
	}

	sem := semaphore.NewWeighted(cfg.Permits)

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			if !sem.TryAcquire(1) {
				return torch.Text(http.StatusTooManyRequests, cfg.Message)
			}
			defer sem.Release(1)
			return next(ctx, r)
		}
	}
}
