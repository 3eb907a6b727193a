package torch

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Cookie describes a Set-Cookie header to attach to a response. Only Name
// and Value are required; zero-valued attributes are omitted from the
// serialized header.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	Domain   string
	Expires  time.Time
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite string // "Strict", "Lax", or "None"
}

// String serializes the cookie as a Set-Cookie header value. The value is
// URL-encoded, mirroring how request cookie parsing decodes it.
func (c Cookie) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(c.Value))
	if c.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.Path)
	}
	if c.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}
	if !c.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(c.Expires.UTC().Format(time.RFC1123))
	}
	if c.MaxAge != 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(c.MaxAge))
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if c.SameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(c.SameSite)
	}
	return b.String()
}

// SetCookie appends a Set-Cookie header to the response.
func (r *Response) SetCookie(c Cookie) *Response {
	return r.AddHeader("Set-Cookie", c.String())
}
