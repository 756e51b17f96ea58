package schema

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	msgMissing = "Missing data for required field."
	msgUnknown = "Unknown field."
)

// Coerce validates grouped query parameters against the schema. Input values are
// string or []string. Absent list fields without a default come back as empty slices.
// On any failure the result is nil and the error is a *ValidationError.
// An undeclared parameter spelled like a field's result name is always reported as
// unknown, whatever the policy, so it can never shadow the coerced value.
func (s *Schema) Coerce(params map[string]any) (map[string]any, error) {
	if s == nil {
		return nil, errors.New("schema is nil")
	}

	out := make(map[string]any, len(s.Fields))
	verr := &ValidationError{}

	declared := make(map[string]struct{}, len(s.Fields))
	names := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.key()] = struct{}{}
		names[f.Name] = struct{}{}
	}

	for _, f := range s.Fields {
		raw, ok := params[f.key()]
		if !ok {
			if f.Default == nil {
				switch {
				case f.Required:
					verr.add(f.Name, msgMissing)
				case f.List:
					if conv, ok := converters[f.Type]; ok {
						out[f.Name] = conv.newSlice(nil)
					}
				}
				continue
			}
			raw = f.Default
		}

		value, reasons := f.coerce(raw)
		if len(reasons) > 0 {
			for _, r := range reasons {
				verr.add(f.Name, r)
			}
			continue
		}
		out[f.Name] = value
	}

	for key, raw := range params {
		if _, ok := declared[key]; ok {
			continue
		}
		if _, shadows := names[key]; shadows {
			verr.add(key, msgUnknown)
			continue
		}
		switch s.Unknown {
		case UnknownExclude:
		case UnknownInclude:
			out[key] = raw
		default:
			verr.add(key, msgUnknown)
		}
	}

	if len(verr.Fields) > 0 {
		verr.Valid = out
		return nil, verr
	}
	return out, nil
}

// coerce converts one raw value (string or []string) for the field.
func (f Field) coerce(raw any) (any, []string) {
	conv, ok := converters[f.Type]
	if !ok {
		return nil, []string{fmt.Sprintf("Unsupported field type %q.", f.Type)}
	}

	if !f.List {
		s, ok := raw.(string)
		if !ok {
			return nil, []string{conv.invalid}
		}
		v, reason := f.coerceOne(conv, s)
		if reason != "" {
			return nil, []string{reason}
		}
		return v, nil
	}

	var items []string
	switch typed := raw.(type) {
	case string:
		items = []string{typed}
	case []string:
		items = typed
	default:
		return nil, []string{"Not a valid list."}
	}

	var reasons []string
	parsed := make([]any, 0, len(items))
	for i, item := range items {
		v, reason := f.coerceOne(conv, item)
		if reason != "" {
			reasons = append(reasons, "index "+strconv.Itoa(i)+": "+reason)
			continue
		}
		parsed = append(parsed, v)
	}
	if f.MinItems != nil && len(items) < *f.MinItems {
		reasons = append(reasons, fmt.Sprintf("Shorter than minimum length %d.", *f.MinItems))
	}
	if f.MaxItems != nil && len(items) > *f.MaxItems {
		reasons = append(reasons, fmt.Sprintf("Longer than maximum length %d.", *f.MaxItems))
	}
	if len(reasons) > 0 {
		return nil, reasons
	}
	return conv.newSlice(parsed), nil
}

// coerceOne parses a single value and applies the choice and range checks.
func (f Field) coerceOne(conv converter, raw string) (any, string) {
	if len(f.OneOf) > 0 && !slices.Contains(f.OneOf, raw) {
		return nil, "Must be one of: " + strings.Join(f.OneOf, ", ") + "."
	}

	v, reason := conv.parse(raw)
	if reason != "" {
		return nil, reason
	}

	if n, ok := numeric(v); ok {
		if f.Min != nil && n < *f.Min {
			return nil, "Must be greater than or equal to " + formatBound(*f.Min) + "."
		}
		if f.Max != nil && n > *f.Max {
			return nil, "Must be less than or equal to " + formatBound(*f.Max) + "."
		}
	}
	return v, ""
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
