package torch

import "log/slog"

// Option configures an App during New.
type Option func(*App)

// WithLogger sets the app's logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.logger = log
		}
	}
}

// WithMiddleware appends middleware in registration order.
func WithMiddleware(mws ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mws...)
	}
}

// WithState registers shared values in the state container, keyed by
// their dynamic type.
func WithState(values ...any) Option {
	return func(a *App) {
		for _, v := range values {
			a.state.Insert(v)
		}
	}
}

// WithNotFound replaces the default 404 handler.
func WithNotFound(h HandlerFunc) Option {
	return func(a *App) {
		if h != nil {
			a.router.NotFound(h)
		}
	}
}
