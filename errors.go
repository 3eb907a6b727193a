package torch

import (
	"fmt"
	"net/http"
)

// Kind classifies an extraction or dispatch failure. Each kind maps to a
// fixed HTTP status code.
type Kind int

const (
	// KindMissingPathParam means a required path parameter was not bound.
	KindMissingPathParam Kind = iota
	// KindInvalidPathParam means a path parameter failed scalar parsing.
	KindInvalidPathParam
	// KindInvalidQuery means the query string could not be decoded.
	KindInvalidQuery
	// KindInvalidJSON means the JSON body was empty or malformed.
	KindInvalidJSON
	// KindInvalidForm means the form body could not be decoded.
	KindInvalidForm
	// KindMissingHeader means a required header was absent.
	KindMissingHeader
	// KindInvalidHeader means a header value could not be used.
	KindInvalidHeader
	// KindInvalidCookie means the Cookie header could not be parsed.
	KindInvalidCookie
	// KindMissingState means no state value was registered for the
	// requested type. This is an application wiring bug, not client error.
	KindMissingState
	// KindContentTooLarge means the body exceeded a configured limit.
	KindContentTooLarge
	// KindUnsupportedMedia means the Content-Type did not match the
	// extractor's expectation.
	KindUnsupportedMedia
)

// label is the user-facing failure category.
func (k Kind) label() string {
	switch k {
	case KindMissingPathParam:
		return "Missing path parameter"
	case KindInvalidPathParam:
		return "Invalid path parameter"
	case KindInvalidQuery:
		return "Invalid query parameter"
	case KindInvalidJSON:
		return "Invalid JSON"
	case KindInvalidForm:
		return "Invalid form data"
	case KindMissingHeader:
		return "Missing header"
	case KindInvalidHeader:
		return "Invalid header"
	case KindInvalidCookie:
		return "Invalid cookie"
	case KindMissingState:
		return "Missing application state"
	case KindContentTooLarge:
		return "Request body too large"
	case KindUnsupportedMedia:
		return "Unsupported media type"
	default:
		return "Request error"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindMissingState:
		return http.StatusInternalServerError
	case KindContentTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}

// Error is the extraction/dispatch failure type. It renders as a plain-text
// response whose status is fixed by the Kind.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// NewError builds an Error with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause and returns the error for chaining.
func (e *Error) Wrap(cause error) *Error {
	e.Cause = cause
	return e
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.label()
	}
	return e.Kind.label() + ": " + e.Message
}

// Unwrap exposes the cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Status returns the HTTP status code the error renders with.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Response renders the error as a plain-text response.
func (e *Error) Response() *Response {
	return Text(e.Status(), e.Error())
}

// Convenience constructors, one per kind.

func ErrMissingPathParam(format string, args ...any) *Error {
	return NewError(KindMissingPathParam, format, args...)
}

func ErrInvalidPathParam(format string, args ...any) *Error {
	return NewError(KindInvalidPathParam, format, args...)
}

func ErrInvalidQuery(format string, args ...any) *Error {
	return NewError(KindInvalidQuery, format, args...)
}

func ErrInvalidJSON(format string, args ...any) *Error {
	return NewError(KindInvalidJSON, format, args...)
}

func ErrInvalidForm(format string, args ...any) *Error {
	return NewError(KindInvalidForm, format, args...)
}

func ErrMissingHeader(format string, args ...any) *Error {
	return NewError(KindMissingHeader, format, args...)
}

func ErrInvalidHeader(format string, args ...any) *Error {
	return NewError(KindInvalidHeader, format, args...)
}

func ErrInvalidCookie(format string, args ...any) *Error {
	return NewError(KindInvalidCookie, format, args...)
}

func ErrMissingState(format string, args ...any) *Error {
	return NewError(KindMissingState, format, args...)
}

func ErrContentTooLarge(format string, args ...any) *Error {
	return NewError(KindContentTooLarge, format, args...)
}

func ErrUnsupportedMedia(format string, args ...any) *Error {
	return NewError(KindUnsupportedMedia, format, args...)
}
