package extractors

import (
	"strings"

	"github.com/torchweb/torch"
)

const formContentType = "application/x-www-form-urlencoded"

// formBody validates the content type and returns the body as a string.
func formBody(r *torch.Request) (string, error) {
	ct := contentType(r)
	if !strings.HasPrefix(ct, formContentType) {
		return "", torch.ErrUnsupportedMedia("expected %s, got %q", formContentType, ct)
	}
	body := r.Body()
	if len(body) == 0 {
		return "", torch.ErrInvalidForm("request body is empty")
	}
	return string(body), nil
}

// FormMap extracts an x-www-form-urlencoded body as a map. Repeated keys
// keep the last occurrence; a bare key (checkbox convention) maps to the
// empty string.
type FormMap struct {
	Values map[string]string
}

func (f *FormMap) ExtractBody(r *torch.Request) error {
	body, err := formBody(r)
	if err != nil {
		return err
	}
	pairs, err := parsePairs(body, torch.KindInvalidForm)
	if err != nil {
		return err
	}
	f.Values = pairsToMap(pairs)
	return nil
}

// FormPairs extracts the form body as ordered key/value pairs, preserving
// duplicates and their order of appearance.
type FormPairs struct {
	Values [][2]string
}

func (f *FormPairs) ExtractBody(r *torch.Request) error {
	body, err := formBody(r)
	if err != nil {
		return err
	}
	pairs, err := parsePairs(body, torch.KindInvalidForm)
	if err != nil {
		return err
	}
	f.Values = pairs
	return nil
}

// Form decodes an x-www-form-urlencoded body into a struct. Fields match
// form keys via the `form` struct tag or a case-insensitive field-name
// match, with the same loose scalar inference as Query: a value-less
// checkbox key sets a bool field to true, "on"/"off" map to bools, and
// numbers parse per field kind.
//
//	type loginForm struct {
//	    Username string `form:"username"`
//	    Password string `form:"password"`
//	    Remember bool   `form:"remember_me"`
//	}
type Form[T any] struct {
	Value T
}

func (f *Form[T]) ExtractBody(r *torch.Request) error {
	body, err := formBody(r)
	if err != nil {
		return err
	}
	pairs, err := parsePairs(body, torch.KindInvalidForm)
	if err != nil {
		return err
	}
	return decodeStruct(pairs, &f.Value, "form", torch.KindInvalidForm)
}
