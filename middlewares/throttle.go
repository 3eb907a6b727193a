package middlewares

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/torchweb/torch"
)

// ThrottleConfig configures the token-bucket limiter.
type ThrottleConfig struct {
	Burst   int
	Message string
}

// ThrottleOption configures ThrottleConfig.
type ThrottleOption func(*ThrottleConfig)

// WithThrottleBurst sets the bucket size. Defaults to the ceiling of the
// per-second rate, minimum 1.
func WithThrottleBurst(burst int) ThrottleOption {
	return func(cfg *ThrottleConfig) {
		if burst > 0 {
			cfg.Burst = burst
		}
	}
}

// WithThrottleMessage replaces the 429 response body.
func WithThrottleMessage(msg string) ThrottleOption {
	return func(cfg *ThrottleConfig) {
		cfg.Message = msg
	}
}

// Throttle returns middleware that limits sustained request rate with a
// token bucket: requestsPerSecond tokens refill per second and each
// request spends one. A request arriving to an empty bucket is rejected
// with 429 immediately, without queueing. Unlike RateLimit, this bounds
// wall-clock rate rather than concurrency.
func Throttle(requestsPerSecond float64, opts ...ThrottleOption) torch.Middleware {
	cfg := &ThrottleConfig{
		Message: "Rate limit exceeded",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(requestsPerSecond)
		if cfg.Burst < 1 {
			cfg.Burst = 1
		}
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), cfg.Burst)

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			if !limiter.Allow() {
				return torch.Text(http.StatusTooManyRequests, cfg.Message)
			}
			return next(ctx, r)
		}
	}
}
