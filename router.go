package torch

import (
	"context"
	"net/http"
	"strings"
)

// segKind discriminates pattern segments.
type segKind int

const (
	segStatic segKind = iota
	segParam
	segWildcard
)

// segment is one element of a parsed route pattern.
type segment struct {
	value string
	kind  segKind
}

// pattern is a parsed route path. Segments are the slash-separated pieces
// with empties dropped, so "/" parses to zero segments.
type pattern struct {
	raw      string
	segments []segment
}

func parsePattern(raw string) pattern {
	p := pattern{raw: raw}
	for part := range strings.SplitSeq(raw, "/") {
		if part == "" {
			continue
		}
		switch {
		case part == "*":
			p.segments = append(p.segments, segment{kind: segWildcard})
		case strings.HasPrefix(part, ":"):
			p.segments = append(p.segments, segment{kind: segParam, value: part[1:]})
		default:
			p.segments = append(p.segments, segment{kind: segStatic, value: part})
		}
	}
	return p
}

// match walks the pattern against a request path. On success it returns
// the bound parameters (possibly empty, never nil). A wildcard matches the
// remainder of the path, including an empty remainder.
func (p pattern) match(path string) (map[string]string, bool) {
	params := make(map[string]string)
	var parts []string
	for part := range strings.SplitSeq(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	i := 0
	for ; i < len(p.segments); i++ {
		seg := p.segments[i]
		if seg.kind == segWildcard {
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch seg.kind {
		case segStatic:
			if seg.value != parts[i] {
				return nil, false
			}
		case segParam:
			params[seg.value] = parts[i]
		}
	}
	if i != len(parts) {
		return nil, false
	}
	return params, true
}

// route is a registered pattern/handler pair.
type route struct {
	handler HandlerFunc
	pattern pattern
}

// Router dispatches requests to handlers by method and path. Routes are
// scanned linearly in registration order and the first match wins, so more
// specific patterns must be registered before overlapping general ones.
type Router struct {
	routes   map[string][]route
	notFound HandlerFunc
}

// NewRouter returns an empty router with the default 404 handler.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string][]route),
		notFound: func(ctx context.Context, r *Request) *Response {
			return Text(http.StatusNotFound, "Not Found")
		},
	}
}

// Handle registers a handler for the given method and path pattern.
// Patterns mix static segments, ":name" parameters, and a trailing "*"
// wildcard: "/users/:id", "/static/*".
func (rt *Router) Handle(method, path string, h HandlerFunc) *Router {
	rt.routes[method] = append(rt.routes[method], route{
		pattern: parsePattern(path),
		handler: h,
	})
	return rt
}

func (rt *Router) GET(path string, h HandlerFunc) *Router {
	return rt.Handle(http.MethodGet, path, h)
}

func (rt *Router) POST(path string, h HandlerFunc) *Router {
	return rt.Handle(http.MethodPost, path, h)
}

func (rt *Router) PUT(path string, h HandlerFunc) *Router {
	return rt.Handle(http.MethodPut, path, h)
}

func (rt *Router) PATCH(path string, h HandlerFunc) *Router {
	return rt.Handle(http.MethodPatch, path, h)
}

func (rt *Router) DELETE(path string, h HandlerFunc) *Router {
	return rt.Handle(http.MethodDelete, path, h)
}

func (rt *Router) HEAD(path string, h HandlerFunc) *Router {
	return rt.Handle(http.MethodHead, path, h)
}

func (rt *Router) OPTIONS(path string, h HandlerFunc) *Router {
	return rt.Handle(http.MethodOptions, path, h)
}

// NotFound replaces the handler used when no route matches.
func (rt *Router) NotFound(h HandlerFunc) *Router {
	rt.notFound = h
	return rt
}

// Dispatch finds the first matching route for the request, binds its path
// parameters, and runs its handler. Unmatched requests go to the not-found
// handler.
func (rt *Router) Dispatch(ctx context.Context, r *Request) *Response {
	for _, rte := range rt.routes[r.Method] {
		if params, ok := rte.pattern.match(r.Path); ok {
			r.setParams(params)
			return rte.handler(ctx, r)
		}
	}
	return rt.notFound(ctx, r)
}
