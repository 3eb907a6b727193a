package extractors

import (
	"net/url"
	"strings"

	"github.com/torchweb/torch"
)

// Cookies parses the Cookie header into a name→value map. Pairs are split
// on ';', trimmed, and values are URL-decoded. A missing Cookie header
// yields an empty map, a pair without '=' maps the bare name to the empty
// string, and a bad escape sequence is an extraction error.
type Cookies struct {
	Values map[string]string
}

func (c *Cookies) ExtractParts(r *torch.Request) error {
	values, err := parseCookieHeader(r.Header.Get("Cookie"))
	if err != nil {
		return err
	}
	c.Values = values
	return nil
}

// SessionCookie extracts the session identifier, trying the conventional
// names in order: "session_id", then "sessionid", then "SESSIONID".
// Present is false when none of them is set.
type SessionCookie struct {
	Value   string
	Present bool
}

func (s *SessionCookie) ExtractParts(r *torch.Request) error {
	values, err := parseCookieHeader(r.Header.Get("Cookie"))
	if err != nil {
		return err
	}
	for _, name := range []string{"session_id", "sessionid", "SESSIONID"} {
		if v, ok := values[name]; ok {
			s.Value = v
			s.Present = true
			return nil
		}
	}
	return nil
}

func parseCookieHeader(header string) (map[string]string, error) {
	values := make(map[string]string)
	if header == "" {
		return values, nil
	}
	for pair := range strings.SplitSeq(header, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			// Valueless cookies are rare but legal.
			values[strings.TrimSpace(name)] = ""
			continue
		}
		name = strings.TrimSpace(name)
		decoded, err := url.QueryUnescape(strings.TrimSpace(value))
		if err != nil {
			return nil, torch.ErrInvalidCookie("invalid encoding in cookie %q", name).Wrap(err)
		}
		values[name] = decoded
	}
	return values, nil
}
