package schema

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	msgInvalidString   = "Not a valid string."
	msgInvalidInteger  = "Not a valid integer."
	msgIntegerRange    = "Number out of range."
	msgInvalidNumber   = "Not a valid number."
	msgSpecialNumber   = "Special numeric values (nan or infinity) are not permitted."
	msgInvalidBoolean  = "Not a valid boolean."
	msgInvalidDateTime = "Not a valid datetime."
	msgInvalidUUID     = "Not a valid UUID."
)

// converter parses one raw value. The returned string is the failure reason.
type converter struct {
	parse   func(raw string) (any, string)
	invalid string
	// newSlice builds a typed slice out of parsed elements.
	newSlice func(items []any) any
}

var converters = map[Type]converter{
	TypeString: {
		parse:    func(raw string) (any, string) { return raw, "" },
		invalid:  msgInvalidString,
		newSlice: sliceOf[string],
	},
	TypeInteger: {
		parse:    parseInteger,
		invalid:  msgInvalidInteger,
		newSlice: sliceOf[int],
	},
	TypeFloat: {
		parse:    parseFloat,
		invalid:  msgInvalidNumber,
		newSlice: sliceOf[float64],
	},
	TypeBoolean: {
		parse:    parseBoolean,
		invalid:  msgInvalidBoolean,
		newSlice: sliceOf[bool],
	},
	TypeDateTime: {
		parse:    parseDateTime,
		invalid:  msgInvalidDateTime,
		newSlice: sliceOf[time.Time],
	},
	TypeUUID: {
		parse:    parseUUID,
		invalid:  msgInvalidUUID,
		newSlice: sliceOf[uuid.UUID],
	},
}

func sliceOf[T any](items []any) any {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.(T))
	}
	return out
}

func parseInteger(raw string) (any, string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		return nil, msgIntegerRange
	}
	if err != nil {
		return nil, msgInvalidInteger
	}
	return n, ""
}

func parseFloat(raw string) (any, string) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, msgInvalidNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, msgSpecialNumber
	}
	return f, ""
}

var (
	truthy = map[string]struct{}{"t": {}, "true": {}, "on": {}, "y": {}, "yes": {}, "1": {}}
	falsy  = map[string]struct{}{"f": {}, "false": {}, "off": {}, "n": {}, "no": {}, "0": {}}
)

func parseBoolean(raw string) (any, string) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := truthy[v]; ok {
		return true, ""
	}
	if _, ok := falsy[v]; ok {
		return false, ""
	}
	return nil, msgInvalidBoolean
}

func parseDateTime(raw string) (any, string) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return nil, msgInvalidDateTime
	}
	return t, ""
}

func parseUUID(raw string) (any, string) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, msgInvalidUUID
	}
	return id, ""
}

// numeric returns the value as float64 for range checks.
func numeric(v any) (float64, bool) {
	switch typed := v.(type) {
	case int:
		return float64(typed), true
	case float64:
		return typed, true
	default:
		return 0, false
	}
}
