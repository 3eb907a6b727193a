package extractors

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/torchweb/torch"
)

const jsonContentType = "application/json"

// JSON decodes an application/json body into a value of type T.
//
// The Content-Type header must start with "application/json" (parameters
// such as charset are allowed); anything else is a 415-class failure. An
// empty body and malformed or trailing data are 400-class failures.
// Unknown object fields are ignored.
//
//	type createUser struct {
//	    Name  string `json:"name"`
//	    Email string `json:"email"`
//	}
//
//	app.POST("/users", torch.HandlerBody(func(ctx context.Context, in extractors.JSON[createUser]) torch.Status {
//	    return torch.Status{Code: 201, Body: in.Value}
//	}))
type JSON[T any] struct {
	Value T
}

func (j *JSON[T]) ExtractBody(r *torch.Request) error {
	ct := contentType(r)
	if !strings.HasPrefix(ct, jsonContentType) {
		return torch.ErrUnsupportedMedia("expected %s, got %q", jsonContentType, ct)
	}
	body := r.Body()
	if len(body) == 0 {
		return torch.ErrInvalidJSON("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&j.Value); err != nil {
		return torch.ErrInvalidJSON("failed to decode body: %v", err).Wrap(err)
	}
	// A second token means trailing data after the document.
	if _, err := dec.Token(); err != io.EOF {
		return torch.ErrInvalidJSON("unexpected data after JSON document")
	}
	return nil
}
