package torch

import (
	"context"
	"log/slog"
	"sync"
)

// App ties the router, the middleware chain, and the shared state
// container together. Configure it via options and the route helpers, then
// call Dispatch. The middleware chain is composed once on first dispatch
// and the app is frozen from that point on; registering routes or
// middleware after serving has started is a programming error.
type App struct {
	router      *Router
	middlewares []Middleware
	state       *StateMap
	logger      *slog.Logger

	once    sync.Once
	handler HandlerFunc
}

// New creates an App with the given options.
//
// Example:
//
//	app := torch.New(
//	    torch.WithState(db),
//	    torch.WithMiddleware(middlewares.Logger(log)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: NewRouter(),
		state:  NewStateMap(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Use appends middleware to the chain. Order matters: the first middleware
// registered is the outermost.
func (a *App) Use(mws ...Middleware) *App {
	a.middlewares = append(a.middlewares, mws...)
	return a
}

// State registers shared values in the application state container, keyed
// by their dynamic type.
func (a *App) State(values ...any) *App {
	for _, v := range values {
		a.state.Insert(v)
	}
	return a
}

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Route registration helpers, delegating to the router.

func (a *App) Handle(method, path string, h HandlerFunc) *App {
	a.router.Handle(method, path, h)
	return a
}

func (a *App) GET(path string, h HandlerFunc) *App {
	a.router.GET(path, h)
	return a
}

func (a *App) POST(path string, h HandlerFunc) *App {
	a.router.POST(path, h)
	return a
}

func (a *App) PUT(path string, h HandlerFunc) *App {
	a.router.PUT(path, h)
	return a
}

func (a *App) PATCH(path string, h HandlerFunc) *App {
	a.router.PATCH(path, h)
	return a
}

func (a *App) DELETE(path string, h HandlerFunc) *App {
	a.router.DELETE(path, h)
	return a
}

func (a *App) HEAD(path string, h HandlerFunc) *App {
	a.router.HEAD(path, h)
	return a
}

func (a *App) OPTIONS(path string, h HandlerFunc) *App {
	a.router.OPTIONS(path, h)
	return a
}

// NotFound replaces the handler used when no route matches.
func (a *App) NotFound(h HandlerFunc) *App {
	a.router.NotFound(h)
	return a
}

// Dispatch runs the request through the middleware chain into the router
// and returns the response. The chain is composed on the first call and
// reused for every subsequent request.
func (a *App) Dispatch(ctx context.Context, r *Request) *Response {
	a.once.Do(func() {
		a.handler = chain(a.router.Dispatch, a.middlewares)
	})
	r.SetStateMap(a.state)
	return a.handler(ctx, r)
}
