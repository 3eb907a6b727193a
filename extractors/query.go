package extractors

import "github.com/torchweb/torch"

// QueryMap extracts all query parameters as a map. Repeated keys keep the
// last occurrence; use QueryPairs when order or duplicates matter.
type QueryMap struct {
	Values map[string]string
}

func (q *QueryMap) ExtractParts(r *torch.Request) error {
	params, err := r.QueryParams()
	if err != nil {
		return torch.ErrInvalidQuery("malformed query string").Wrap(err)
	}
	q.Values = params
	return nil
}

// QueryPairs extracts the query string as ordered key/value pairs,
// preserving duplicates and their order of appearance.
type QueryPairs struct {
	Values [][2]string
}

func (q *QueryPairs) ExtractParts(r *torch.Request) error {
	pairs, err := parsePairs(r.RawQuery(), torch.KindInvalidQuery)
	if err != nil {
		return err
	}
	q.Values = pairs
	return nil
}

// Query decodes the query string into a struct. Fields match query keys
// via the `query` struct tag or a case-insensitive field-name match, with
// the loose scalar inference described on decodeStruct: a bare key sets a
// bool field to true, numbers parse per field kind, and slice fields
// accept repeated keys or comma-separated values.
//
//	type listParams struct {
//	    Page int      `query:"page"`
//	    Tags []string `query:"tags"`
//	    All  bool     `query:"all"`
//	}
type Query[T any] struct {
	Value T
}

func (q *Query[T]) ExtractParts(r *torch.Request) error {
	pairs, err := parsePairs(r.RawQuery(), torch.KindInvalidQuery)
	if err != nil {
		return err
	}
	return decodeStruct(pairs, &q.Value, "query", torch.KindInvalidQuery)
}
