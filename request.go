package torch

import (
	"net/http"
	"net/url"
	"strings"
)

// Request is an in-memory HTTP request value.
//
// It carries everything the dispatch core needs: method, path, headers, a
// fully buffered body, router-bound path parameters, eagerly parsed query
// parameters, and a type-keyed extension bag for middleware to stash
// per-request values. A Request is built by a transport bridge (or a test)
// and handed to App.Dispatch; it is not safe for concurrent mutation.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method string
	// Path is the decoded request path without the query string.
	Path string
	// Proto is the protocol version, e.g. "HTTP/1.1".
	Proto string
	// Header holds the request headers.
	Header http.Header

	body        []byte
	rawQuery    string
	queryParams map[string]string
	queryErr    error
	pathParams  map[string]string
	extensions  map[any]any
	state       *StateMap
}

// NewRequest builds a Request from a method and a request target
// ("/users/123?page=2"). The query string is split off and parsed once;
// a malformed query is remembered and surfaced by the query extractors
// rather than failing construction.
func NewRequest(method, target string) *Request {
	r := &Request{
		Method: method,
		Path:   target,
		Proto:  "HTTP/1.1",
		Header: make(http.Header),
	}
	if i := strings.IndexByte(target, '?'); i >= 0 {
		r.Path = target[:i]
		r.rawQuery = target[i+1:]
	}
	if r.Path == "" {
		r.Path = "/"
	}
	r.queryParams, r.queryErr = parseQueryMap(r.rawQuery)
	return r
}

// parseQueryMap decodes a raw query string into a map. Repeated keys keep
// the last value; a key without '=' maps to the empty string.
func parseQueryMap(raw string) (map[string]string, error) {
	params := make(map[string]string)
	if raw == "" {
		return params, nil
	}
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return params, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return params, err
		}
		params[k] = v
	}
	return params, nil
}

// SetBody replaces the buffered request body and returns the request for
// chaining.
func (r *Request) SetBody(body []byte) *Request {
	r.body = body
	return r
}

// SetHeader sets a request header and returns the request for chaining.
func (r *Request) SetHeader(name, value string) *Request {
	r.Header.Set(name, value)
	return r
}

// Body returns the buffered request body. The slice is shared, not copied.
func (r *Request) Body() []byte {
	return r.body
}

// Param returns the path parameter bound by the router, or "" if absent.
func (r *Request) Param(name string) string {
	return r.pathParams[name]
}

// Params returns all router-bound path parameters. The returned map is the
// request's own; treat it as read-only.
func (r *Request) Params() map[string]string {
	if r.pathParams == nil {
		return map[string]string{}
	}
	return r.pathParams
}

// setParams is called by the router after a successful match.
func (r *Request) setParams(params map[string]string) {
	r.pathParams = params
}

// Query returns the query parameter value for name, or "" if absent.
// Repeated keys resolve to the last occurrence.
func (r *Request) Query(name string) string {
	return r.queryParams[name]
}

// QueryParams returns the parsed query parameters along with any parse
// error encountered during construction. Treat the map as read-only.
func (r *Request) QueryParams() (map[string]string, error) {
	return r.queryParams, r.queryErr
}

// RawQuery returns the undecoded query string without the leading '?'.
func (r *Request) RawQuery() string {
	return r.rawQuery
}

// Set stores a value in the request's extension bag under key. Middleware
// uses unexported key types to avoid collisions, same as context values.
func (r *Request) Set(key, value any) {
	if r.extensions == nil {
		r.extensions = make(map[any]any)
	}
	r.extensions[key] = value
}

// Get returns the extension value stored under key, or nil.
func (r *Request) Get(key any) any {
	return r.extensions[key]
}

// State returns the application state container injected by App.Dispatch,
// or nil when the request was dispatched without one.
func (r *Request) State() *StateMap {
	return r.state
}

// SetStateMap attaches the shared application state container. App.Dispatch
// calls this before running the chain; tests may call it directly.
func (r *Request) SetStateMap(s *StateMap) {
	r.state = s
}
