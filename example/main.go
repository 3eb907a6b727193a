// Command example runs a small torch application behind a net/http
// bridge. The dispatch core is transport-free; this file shows the
// handful of lines needed to serve it.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/torchweb/torch"
	"github.com/torchweb/torch/config"
	"github.com/torchweb/torch/extractors"
	"github.com/torchweb/torch/logger"
	"github.com/torchweb/torch/middlewares"
)

type greeting struct {
	Name string `json:"name"`
}

type userStore struct {
	names map[uint32]string
}

func main() {
	cfg, err := config.Load("torch.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry)

	store := &userStore{names: map[uint32]string{123: "Ember"}}

	mws := []torch.Middleware{
		middlewares.Recover(middlewares.WithRecoverLogger(log)),
		middlewares.RequestID(),
		middlewares.Logger(log),
		middlewares.Metrics(),
		middlewares.SecurityHeaders(),
		middlewares.CORS(middlewares.WithCORSOrigin(cfg.AllowOrigin)),
		middlewares.RateLimit(cfg.RateLimitPermits),
	}
	if cfg.ThrottleRPS > 0 {
		mws = append(mws, middlewares.Throttle(cfg.ThrottleRPS))
	}
	mws = append(mws,
		middlewares.Timeout(cfg.Timeout.Std()),
		middlewares.BodyLimit(cfg.MaxBodyBytes),
	)

	app := torch.New(
		torch.WithLogger(log),
		torch.WithState(store),
		torch.WithMiddleware(mws...),
	)

	app.GET("/", torch.Handler0(func(ctx context.Context) string {
		return "Welcome to Torch!"
	}))

	app.GET("/users/:id", torch.Handler2(func(ctx context.Context, id extractors.Path[uint32], s extractors.State[*userStore]) string {
		if name, ok := s.Value.names[id.Value]; ok {
			return fmt.Sprintf("User %d (%s)", id.Value, name)
		}
		return fmt.Sprintf("User %d", id.Value)
	}))

	app.GET("/search", torch.Handler1(func(ctx context.Context, q extractors.QueryMap) *torch.Response {
		return torch.JSON(http.StatusOK, q.Values)
	}))

	app.POST("/greet", torch.HandlerBody(func(ctx context.Context, in extractors.JSON[greeting]) string {
		return "Hello, " + in.Value.Name + "!"
	}))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", bridge(app))

	addr := ":8080"
	log.Info("listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// bridge adapts the in-memory dispatch core to net/http.
func bridge(app *torch.App) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}

		req := torch.NewRequest(r.Method, r.URL.RequestURI()).SetBody(body)
		req.Proto = r.Proto
		for name, values := range r.Header {
			req.Header[name] = values
		}

		resp := app.Dispatch(r.Context(), req)

		for name, values := range resp.Header {
			for _, v := range values {
				w.Header().Add(name, v)
			}
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write(resp.Body)
	})
}
