package query

import (
	"fmt"
	"net/http"
)

// Validator checks a grouped parameter map and returns the coerced values.
// Values in the input are either string or []string.
type Validator interface {
	Coerce(params map[string]any) (map[string]any, error)
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(params map[string]any) (map[string]any, error)

// Coerce calls f(params).
func (f ValidatorFunc) Coerce(params map[string]any) (map[string]any, error) {
	return f(params)
}

// Parse groups params and runs them through v. The validator's result and error are
// returned as they are.
func Parse(params Params, v Validator) (map[string]any, error) {
	var entries []Entry
	if params != nil {
		entries = params.MultiValueEntries()
	}
	return v.Coerce(Group(entries))
}

// ParseRequest decodes the request's query string and parses it with v.
// A malformed query string is reported as a wrapped decoding error, never as a
// validation failure.
func ParseRequest(r *http.Request, v Validator) (map[string]any, error) {
	entries, err := FromRequest(r)
	if err != nil {
		return nil, fmt.Errorf("parse query string: %w", err)
	}
	return Parse(entries, v)
}
