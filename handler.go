package torch

import "context"

// HandlerFunc is the uniform handler shape every route ultimately runs as:
// a parsed request in, a response value out. Errors are rendered into the
// response rather than returned; extraction failures and middleware
// short-circuits all flow through the same type.
type HandlerFunc func(ctx context.Context, r *Request) *Response

// Middleware wraps a handler with additional behavior. Middleware may
// short-circuit by returning without calling next.
type Middleware func(next HandlerFunc) HandlerFunc

// chain composes middleware around a terminal handler. The first element
// of mws becomes the outermost wrapper, so middleware runs in registration
// order on the way in and reverse order on the way out. Composition
// happens once, not per request.
func chain(terminal HandlerFunc, mws []Middleware) HandlerFunc {
	h := terminal
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// PartsExtractor is implemented by types that populate themselves from
// request metadata (path, query, headers, state). Parts extraction never
// consumes the body, so any number of parts extractors compose on one
// handler.
type PartsExtractor interface {
	ExtractParts(r *Request) error
}

// BodyExtractor is implemented by types that populate themselves from the
// request body. At most one body extractor applies per handler.
type BodyExtractor interface {
	ExtractBody(r *Request) error
}

// parts constrains a pointer type that can extract itself from request
// metadata. Used by the HandlerN adapters so callers pass extractor values,
// not pointers.
type parts[E any] interface {
	*E
	PartsExtractor
}

// body is the body-extractor analogue of parts.
type body[E any] interface {
	*E
	BodyExtractor
}

// errorResponse renders an extraction failure. Anything that is not a
// *Error is treated as an internal fault.
func errorResponse(err error) *Response {
	return respond(err)
}

// Handler0 adapts a function with no extractor parameters. The return
// value goes through the standard conversion (see respond).
func Handler0[R any](fn func(ctx context.Context) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		return respond(fn(ctx))
	}
}

// Handler1 adapts a function taking one parts extractor. Extraction is
// fail-fast: on error the handler body never runs and the error renders
// with its kind's status code.
func Handler1[E1 any, P1 parts[E1], R any](fn func(ctx context.Context, e1 E1) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		var e1 E1
		if err := P1(&e1).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		return respond(fn(ctx, e1))
	}
}

// Handler2 adapts a function taking two parts extractors, extracted
// left to right, fail-fast.
func Handler2[E1, E2 any, P1 parts[E1], P2 parts[E2], R any](fn func(ctx context.Context, e1 E1, e2 E2) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		var e1 E1
		if err := P1(&e1).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		var e2 E2
		if err := P2(&e2).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		return respond(fn(ctx, e1, e2))
	}
}

// Handler3 adapts a function taking three parts extractors.
func Handler3[E1, E2, E3 any, P1 parts[E1], P2 parts[E2], P3 parts[E3], R any](fn func(ctx context.Context, e1 E1, e2 E2, e3 E3) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		var e1 E1
		if err := P1(&e1).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		var e2 E2
		if err := P2(&e2).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		var e3 E3
		if err := P3(&e3).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		return respond(fn(ctx, e1, e2, e3))
	}
}

// Handler4 adapts a function taking four parts extractors.
func Handler4[E1, E2, E3, E4 any, P1 parts[E1], P2 parts[E2], P3 parts[E3], P4 parts[E4], R any](fn func(ctx context.Context, e1 E1, e2 E2, e3 E3, e4 E4) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		var e1 E1
		if err := P1(&e1).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		var e2 E2
		if err := P2(&e2).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		var e3 E3
		if err := P3(&e3).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		var e4 E4
		if err := P4(&e4).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		return respond(fn(ctx, e1, e2, e3, e4))
	}
}

// HandlerBody adapts a function taking one body extractor (JSON, Form).
func HandlerBody[E1 any, B1 body[E1], R any](fn func(ctx context.Context, e1 E1) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		var e1 E1
		if err := B1(&e1).ExtractBody(r); err != nil {
			return errorResponse(err)
		}
		return respond(fn(ctx, e1))
	}
}

// HandlerPartsBody adapts a function taking one parts extractor followed
// by one body extractor. Parts are extracted first, matching the rule that
// the body extractor runs last.
func HandlerPartsBody[E1, E2 any, P1 parts[E1], B2 body[E2], R any](fn func(ctx context.Context, e1 E1, e2 E2) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		var e1 E1
		if err := P1(&e1).ExtractParts(r); err != nil {
			return errorResponse(err)
		}
		var e2 E2
		if err := B2(&e2).ExtractBody(r); err != nil {
			return errorResponse(err)
		}
		return respond(fn(ctx, e1, e2))
	}
}

// HandlerRequest adapts a function that wants the raw request. It is the
// escape hatch for handlers that inspect the request directly or run body
// extractors by hand.
func HandlerRequest[R any](fn func(ctx context.Context, r *Request) R) HandlerFunc {
	return func(ctx context.Context, r *Request) *Response {
		return respond(fn(ctx, r))
	}
}

// Extract runs a body extractor by hand inside a raw handler:
//
//	payload, err := torch.Extract[extractors.JSON[User]](r)
func Extract[E any, B body[E]](r *Request) (E, error) {
	var e E
	err := B(&e).ExtractBody(r)
	return e, err
}
