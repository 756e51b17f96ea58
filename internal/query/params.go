// Package query turns request query parameters into validated, typed values.
package query

import (
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Entry is a single name/value pair from a query string.
type Entry struct {
	// Name is the decoded parameter name.
	Name string
	// Value is the decoded parameter value; empty for "a=" and "a".
	Value string
}

// Params is a read-only, ordered view of query parameters where a name may repeat.
type Params interface {
	MultiValueEntries() []Entry
}

// Entries is an in-memory Params backed by a slice.
type Entries []Entry

// MultiValueEntries returns the entries in their original order.
func (e Entries) MultiValueEntries() []Entry {
	return e
}

// ParseQuery decodes a raw query string keeping the order of every pair.
// Like url.ParseQuery it keeps going after a bad pair and returns the first error
// together with everything that could be decoded.
func ParseQuery(raw string) (Entries, error) {
	var (
		out      Entries
		firstErr error
	)
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		if strings.Contains(pair, ";") {
			if firstErr == nil {
				firstErr = errors.New("invalid semicolon separator in query")
			}
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, Entry{Name: name, Value: value})
	}
	return out, firstErr
}

// FromURL decodes the query string of u.
func FromURL(u *url.URL) (Entries, error) {
	if u == nil {
		return nil, nil
	}
	return ParseQuery(u.RawQuery)
}

// FromRequest decodes the query string of an incoming request.
func FromRequest(r *http.Request) (Entries, error) {
	if r == nil {
		return nil, errors.New("request is nil")
	}
	return FromURL(r.URL)
}

// FromValues flattens url.Values into Entries. Names are sorted because url.Values
// does not remember the order across names; values of one name keep their order.
func FromValues(values url.Values) Entries {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Entries, 0, len(values))
	for _, name := range names {
		for _, v := range values[name] {
			out = append(out, Entry{Name: name, Value: v})
		}
	}
	return out
}
