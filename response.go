package torch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Response is an in-memory HTTP response value built by handlers and
// middleware and written out by a transport bridge.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse returns an empty response with the given status code.
func NewResponse(code int) *Response {
	return &Response{
		StatusCode: code,
		Header:     make(http.Header),
	}
}

// OK returns an empty 200 response.
func OK() *Response {
	return NewResponse(http.StatusOK)
}

// Text returns a text/plain response with the given status and body.
func Text(code int, body string) *Response {
	return NewResponse(code).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetBody([]byte(body))
}

// JSON returns an application/json response encoding v. An encoding
// failure degrades to a 500 text response rather than panicking.
func JSON(code int, v any) *Response {
	b, err := json.Marshal(v)
	if err != nil {
		return Text(http.StatusInternalServerError, "response encoding failed")
	}
	return NewResponse(code).
		SetHeader("Content-Type", "application/json").
		SetBody(b)
}

// SetHeader sets a response header, replacing any existing values.
func (r *Response) SetHeader(name, value string) *Response {
	r.Header.Set(name, value)
	return r
}

// AddHeader appends a response header value.
func (r *Response) AddHeader(name, value string) *Response {
	r.Header.Add(name, value)
	return r
}

// SetBody replaces the response body.
func (r *Response) SetBody(body []byte) *Response {
	r.Body = body
	return r
}

// BodyString returns the body as a string.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// Responder is implemented by values that know how to render themselves
// as a response. *Error implements it, as can any application type.
type Responder interface {
	Response() *Response
}

// Status pairs a status code with a body value for handlers that want to
// return both, e.g. `return torch.Status{Code: 201, Body: user}`. The body
// goes through the same conversion as a bare return value.
type Status struct {
	Code int
	Body any
}

// respond converts an arbitrary handler return value into a *Response.
//
// Supported kinds: nil (empty 200), *Response, Responder, Status, string
// (text/plain 200), []byte (raw 200), int (empty response with that status
// code), error (its response if it is a *Error, 500 otherwise). Anything
// else is JSON-encoded with status 200.
func respond(v any) *Response {
	switch t := v.(type) {
	case nil:
		return OK()
	case *Response:
		if t == nil {
			return OK()
		}
		return t
	case Status:
		resp := respond(t.Body)
		resp.StatusCode = t.Code
		return resp
	case Responder:
		return t.Response()
	case string:
		return Text(http.StatusOK, t)
	case []byte:
		return NewResponse(http.StatusOK).SetBody(t)
	case int:
		return NewResponse(t)
	case error:
		var e *Error
		if errors.As(t, &e) {
			return e.Response()
		}
		return Text(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", t))
	default:
		return JSON(http.StatusOK, v)
	}
}
