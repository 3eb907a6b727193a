package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/torchweb/torch"
)

// DefaultTimeout is the request deadline when none is configured.
const DefaultTimeout = 30 * time.Second

// TimeoutConfig configures the timeout middleware.
type TimeoutConfig struct {
	Timeout time.Duration
	Message string
}

// TimeoutOption configures TimeoutConfig.
type TimeoutOption func(*TimeoutConfig)

// WithTimeoutMessage replaces the 408 response body.
func WithTimeoutMessage(msg string) TimeoutOption {
	return func(cfg *TimeoutConfig) {
		cfg.Message = msg
	}
}

// Timeout returns middleware that races the inner chain against a
// deadline. If the chain does not finish in time the client gets a 408
// and the chain's context is cancelled; cancellation is best-effort, the
// losing goroutine is not awaited and its response is discarded.
func Timeout(d time.Duration, opts ...TimeoutOption) torch.Middleware {
	cfg := &TimeoutConfig{
		Timeout: d,
		Message: "Request timeout",
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()

			done := make(chan *torch.Response, 1)
			go func() {
				done <- next(ctx, r)
			}()

			select {
			case resp := <-done:
				return resp
			case <-ctx.Done():
				return torch.Text(http.StatusRequestTimeout, cfg.Message)
			}
		}
	}
}
