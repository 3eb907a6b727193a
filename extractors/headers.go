package extractors

import (
	"net/http"

	"github.com/torchweb/torch"
)

// Headers extracts the full request header map. Extraction never fails.
type Headers struct {
	Values http.Header
}

func (h *Headers) ExtractParts(r *torch.Request) error {
	h.Values = r.Header
	return nil
}

// UserAgent extracts the User-Agent header. Present is false when the
// header is absent; an absent optional header is not an error.
type UserAgent struct {
	Value   string
	Present bool
}

func (u *UserAgent) ExtractParts(r *torch.Request) error {
	u.Value, u.Present = optionalHeader(r, "User-Agent")
	return nil
}

// Authorization extracts the Authorization header.
type Authorization struct {
	Value   string
	Present bool
}

func (a *Authorization) ExtractParts(r *torch.Request) error {
	a.Value, a.Present = optionalHeader(r, "Authorization")
	return nil
}

// ContentType extracts the Content-Type header.
type ContentType struct {
	Value   string
	Present bool
}

func (c *ContentType) ExtractParts(r *torch.Request) error {
	c.Value, c.Present = optionalHeader(r, "Content-Type")
	return nil
}

func optionalHeader(r *torch.Request, name string) (string, bool) {
	if _, ok := r.Header[http.CanonicalHeaderKey(name)]; !ok {
		return "", false
	}
	return r.Header.Get(name), true
}
