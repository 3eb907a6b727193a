package extractors

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/torchweb/torch"
)

// parsePairs decodes an x-www-form-urlencoded string into ordered
// key/value pairs, preserving duplicates. A key without '=' yields an
// empty value (checkbox convention). Decoding failures are reported with
// the given kind.
func parsePairs(raw string, kind torch.Kind) ([][2]string, error) {
	var pairs [][2]string
	if raw == "" {
		return pairs, nil
	}
	for pair := range strings.SplitSeq(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, torch.NewError(kind, "invalid key encoding: %q", key).Wrap(err)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, torch.NewError(kind, "invalid value encoding for %q", k).Wrap(err)
		}
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs, nil
}

// pairsToMap collapses ordered pairs into a map, last occurrence wins.
func pairsToMap(pairs [][2]string) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p[0]] = p[1]
	}
	return m
}

// decodeStruct populates a struct from decoded pairs. Fields are matched
// by the given struct tag, falling back to a case-insensitive field-name
// match. Unmatched input keys are ignored; unmatched fields keep their
// zero value.
//
// Scalar inference mirrors loosely typed web input: an empty value sets a
// bool field to true (flag and checkbox style), "on"/"true" and
// "off"/"false" map to bools, numbers parse per the field's kind, and a
// slice field accepts either repeated keys or one comma-separated value
// with elements trimmed of surrounding spaces.
func decodeStruct(pairs [][2]string, dst any, tagName string, kind torch.Kind) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return torch.NewError(kind, "decode target must be a pointer to struct, got %T", dst)
	}
	v = v.Elem()
	t := v.Type()

	values := make(map[string][]string, len(pairs))
	for _, p := range pairs {
		values[p[0]] = append(values[p[0]], p[1])
	}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get(tagName)
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		vals, ok := values[name]
		if !ok {
			vals, ok = lookupFold(values, name)
		}
		if !ok {
			continue
		}
		if err := setField(v.Field(i), field.Name, vals, kind); err != nil {
			return err
		}
	}
	return nil
}

func lookupFold(values map[string][]string, name string) ([]string, bool) {
	for k, v := range values {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func setField(fv reflect.Value, name string, vals []string, kind torch.Kind) error {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}

	if fv.Kind() == reflect.Slice {
		elems := vals
		if len(vals) == 1 && strings.Contains(vals[0], ",") {
			elems = strings.Split(vals[0], ",")
		}
		out := reflect.MakeSlice(fv.Type(), len(elems), len(elems))
		for i, raw := range elems {
			if err := setScalar(out.Index(i), name, strings.TrimSpace(raw), kind); err != nil {
				return err
			}
		}
		fv.Set(out)
		return nil
	}

	return setScalar(fv, name, vals[len(vals)-1], kind)
}

func setScalar(fv reflect.Value, name, raw string, kind torch.Kind) error {
	fail := func(want string, err error) error {
		return torch.NewError(kind, "failed to parse field %q as %s: %v", name, want, err)
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		switch raw {
		case "", "on", "true", "1":
			fv.SetBool(true)
		case "off", "false", "0":
			fv.SetBool(false)
		default:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fail("bool", err)
			}
			fv.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return fail(fv.Kind().String(), err)
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
		if err != nil {
			return fail(fv.Kind().String(), err)
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return fail(fv.Kind().String(), err)
		}
		fv.SetFloat(f)
	default:
		return torch.NewError(kind, "unsupported field type %s for %q", fv.Type(), name)
	}
	return nil
}

// contentType returns the request's Content-Type header, lowercased and
// without surrounding whitespace.
func contentType(r *torch.Request) string {
	return strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
}
