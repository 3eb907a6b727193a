// Package torch is the request-dispatch core of a small web framework.
//
// It models HTTP requests and responses as plain values, dispatches them
// through a composable middleware chain into a linear-scan router, and
// adapts ordinary functions into handlers via a typed extraction protocol.
// The package is transport-free: a bridge (net/http or anything else)
// builds a *Request, calls App.Dispatch, and writes the *Response back.
//
// A minimal application:
//
//	app := torch.New()
//	app.GET("/users/:id", torch.Handler1(func(ctx context.Context, id extractors.Path[uint32]) string {
//	    return fmt.Sprintf("User %d", id.Value)
//	}))
//	resp := app.Dispatch(ctx, torch.NewRequest(http.MethodGet, "/users/123"))
package torch

// Version is the library version, set at release time.
const Version = "0.3.0"
