package extractors

import (
	"net/netip"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/torchweb/torch"
)

// Path extracts the single path parameter of a route into a typed value:
//
//	app.GET("/users/:id", torch.Handler1(func(ctx context.Context, id extractors.Path[uint32]) string {
//	    return fmt.Sprintf("User %d", id.Value)
//	}))
//
// The route must bind exactly one parameter; anything else is an
// extraction error. Supported types: string, bool, all int/uint sizes,
// float32/float64, uuid.UUID, and netip.Addr.
type Path[T any] struct {
	Value T
}

func (p *Path[T]) ExtractParts(r *torch.Request) error {
	params := r.Params()
	if len(params) != 1 {
		return torch.ErrMissingPathParam("expected exactly one path parameter, found %d", len(params))
	}
	for name, raw := range params {
		return parseParam(&p.Value, name, raw)
	}
	return nil
}

// Path2 extracts two path parameters. Parameters are matched to fields by
// the alphabetical order of their names, not their position in the route
// pattern: for "/api/:version/users/:user_id" the names sort to
// ["user_id", "version"], so First receives the user_id value and Second
// the version value.
type Path2[T1, T2 any] struct {
	First  T1
	Second T2
}

func (p *Path2[T1, T2]) ExtractParts(r *torch.Request) error {
	pairs, err := sortedParams(r, 2)
	if err != nil {
		return err
	}
	if err := parseParam(&p.First, pairs[0][0], pairs[0][1]); err != nil {
		return err
	}
	return parseParam(&p.Second, pairs[1][0], pairs[1][1])
}

// Path3 extracts three path parameters, matched to fields alphabetically
// by parameter name like Path2.
type Path3[T1, T2, T3 any] struct {
	First  T1
	Second T2
	Third  T3
}

func (p *Path3[T1, T2, T3]) ExtractParts(r *torch.Request) error {
	pairs, err := sortedParams(r, 3)
	if err != nil {
		return err
	}
	if err := parseParam(&p.First, pairs[0][0], pairs[0][1]); err != nil {
		return err
	}
	if err := parseParam(&p.Second, pairs[1][0], pairs[1][1]); err != nil {
		return err
	}
	return parseParam(&p.Third, pairs[2][0], pairs[2][1])
}

// Params extracts all bound path parameters as a name→value map.
type Params struct {
	Values map[string]string
}

func (p *Params) ExtractParts(r *torch.Request) error {
	p.Values = r.Params()
	return nil
}

func sortedParams(r *torch.Request, want int) ([][2]string, error) {
	params := r.Params()
	if len(params) != want {
		return nil, torch.ErrMissingPathParam("expected %d path parameters, found %d", want, len(params))
	}
	pairs := make([][2]string, 0, len(params))
	for name, value := range params {
		pairs = append(pairs, [2]string{name, value})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs, nil
}

// parseParam parses a raw path parameter into the pointed-to scalar.
func parseParam(dst any, name, raw string) error {
	fail := func(want string, err error) error {
		return torch.ErrInvalidPathParam("failed to parse parameter %q as %s: %v", name, want, err)
	}
	switch p := dst.(type) {
	case *string:
		*p = raw
	case *bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fail("bool", err)
		}
		*p = b
	case *int:
		n, err := strconv.ParseInt(raw, 10, 0)
		if err != nil {
			return fail("int", err)
		}
		*p = int(n)
	case *int8:
		n, err := strconv.ParseInt(raw, 10, 8)
		if err != nil {
			return fail("int8", err)
		}
		*p = int8(n)
	case *int16:
		n, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return fail("int16", err)
		}
		*p = int16(n)
	case *int32:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fail("int32", err)
		}
		*p = int32(n)
	case *int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fail("int64", err)
		}
		*p = n
	case *uint:
		n, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return fail("uint", err)
		}
		*p = uint(n)
	case *uint8:
		n, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return fail("uint8", err)
		}
		*p = uint8(n)
	case *uint16:
		n, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return fail("uint16", err)
		}
		*p = uint16(n)
	case *uint32:
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fail("uint32", err)
		}
		*p = uint32(n)
	case *uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fail("uint64", err)
		}
		*p = n
	case *float32:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fail("float32", err)
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fail("float64", err)
		}
		*p = f
	case *uuid.UUID:
		u, err := uuid.Parse(raw)
		if err != nil {
			return fail("uuid", err)
		}
		*p = u
	case *netip.Addr:
		a, err := netip.ParseAddr(raw)
		if err != nil {
			return fail("ip address", err)
		}
		*p = a
	default:
		return torch.ErrInvalidPathParam("unsupported parameter type %T for %q", dst, name)
	}
	return nil
}
