// Package schema declares query parameter fields and coerces grouped values into typed ones.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Type names the value type of a field.
type Type string

const (
	// TypeString keeps the raw text.
	TypeString Type = "string"
	// TypeInteger parses a base-10 integer into int.
	TypeInteger Type = "integer"
	// TypeFloat parses a finite number into float64.
	TypeFloat Type = "float"
	// TypeBoolean parses common truthy and falsy spellings into bool.
	TypeBoolean Type = "boolean"
	// TypeDateTime parses an RFC 3339 timestamp into time.Time.
	TypeDateTime Type = "datetime"
	// TypeUUID parses a UUID into uuid.UUID.
	TypeUUID Type = "uuid"
)

// IsValid reports whether t is a known type.
func (t Type) IsValid() bool {
	_, ok := converters[t]
	return ok
}

// UnknownPolicy controls what happens to parameters no field declares.
type UnknownPolicy string

const (
	// UnknownRaise reports undeclared parameters as validation failures.
	UnknownRaise UnknownPolicy = "raise"
	// UnknownExclude drops undeclared parameters.
	UnknownExclude UnknownPolicy = "exclude"
	// UnknownInclude passes undeclared parameters through without coercion.
	UnknownInclude UnknownPolicy = "include"
)

// ParseUnknownPolicy converts a textual policy, defaulting to UnknownRaise when empty.
func ParseUnknownPolicy(value string) (UnknownPolicy, error) {
	switch p := UnknownPolicy(strings.ToLower(strings.TrimSpace(value))); p {
	case "":
		return UnknownRaise, nil
	case UnknownRaise, UnknownExclude, UnknownInclude:
		return p, nil
	default:
		return "", fmt.Errorf("unknown policy %q (expected raise, exclude or include)", value)
	}
}

// Field declares one expected query parameter.
type Field struct {
	// Name is the key of the field in the coerced result.
	Name string `yaml:"name"`
	// Key is the parameter name in the query string; defaults to Name.
	Key string `yaml:"key,omitempty"`
	// Type is the value type of the field or of each element of a list field.
	Type Type `yaml:"type"`
	// List marks a sequence field.
	List bool `yaml:"list,omitempty"`
	// Required fails validation when the parameter is absent.
	Required bool `yaml:"required,omitempty"`
	// Default is a raw string or []string used when the parameter is absent.
	Default any `yaml:"default,omitempty"`
	// Min is the inclusive lower bound for numeric values.
	Min *float64 `yaml:"min,omitempty"`
	// Max is the inclusive upper bound for numeric values.
	Max *float64 `yaml:"max,omitempty"`
	// MinItems is the minimum length of a list field.
	MinItems *int `yaml:"minItems,omitempty"`
	// MaxItems is the maximum length of a list field.
	MaxItems *int `yaml:"maxItems,omitempty"`
	// OneOf restricts raw values to the listed ones.
	OneOf []string `yaml:"oneOf,omitempty"`
}

// key returns the query string name of the field.
func (f Field) key() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// Schema is an ordered set of fields. It satisfies query.Validator.
type Schema struct {
	// Unknown selects how undeclared parameters are handled; empty means raise.
	Unknown UnknownPolicy `yaml:"unknown,omitempty"`
	// Fields lists the declared fields in result order.
	Fields []Field `yaml:"fields"`
}

// New builds a schema and checks the field declarations.
func New(unknown UnknownPolicy, fields ...Field) (*Schema, error) {
	s := &Schema{Unknown: unknown, Fields: fields}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNew is like New but panics on an invalid declaration.
func MustNew(unknown UnknownPolicy, fields ...Field) *Schema {
	s, err := New(unknown, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Check reports every problem in the schema declaration.
func (s *Schema) Check() error {
	if s == nil {
		return errors.New("schema is nil")
	}

	var errs []error
	if _, err := ParseUnknownPolicy(string(s.Unknown)); err != nil {
		errs = append(errs, err)
	}

	names := make(map[string]struct{}, len(s.Fields))
	keys := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, fmt.Errorf("field #%d: name is empty", i))
			continue
		}
		if _, dup := names[f.Name]; dup {
			errs = append(errs, fmt.Errorf("field %q: duplicate name", f.Name))
		}
		names[f.Name] = struct{}{}
		if _, dup := keys[f.key()]; dup {
			errs = append(errs, fmt.Errorf("field %q: duplicate key %q", f.Name, f.key()))
		}
		keys[f.key()] = struct{}{}

		if !f.Type.IsValid() {
			errs = append(errs, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type))
		}
		if f.Required && f.Default != nil {
			errs = append(errs, fmt.Errorf("field %q: default must not be set for required fields", f.Name))
		}
		if f.Default != nil {
			if _, ok := rawValue(f.Default); !ok {
				errs = append(errs, fmt.Errorf("field %q: default must be a string or a list of strings", f.Name))
			}
		}
		if !f.List && (f.MinItems != nil || f.MaxItems != nil) {
			errs = append(errs, fmt.Errorf("field %q: minItems/maxItems require a list field", f.Name))
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			errs = append(errs, fmt.Errorf("field %q: min %v is greater than max %v", f.Name, *f.Min, *f.Max))
		}
		if f.MinItems != nil && f.MaxItems != nil && *f.MinItems > *f.MaxItems {
			errs = append(errs, fmt.Errorf("field %q: minItems %d is greater than maxItems %d", f.Name, *f.MinItems, *f.MaxItems))
		}
	}
	for _, f := range s.Fields {
		if f.Key == "" || f.Key == f.Name {
			continue
		}
		if _, taken := names[f.Key]; taken {
			errs = append(errs, fmt.Errorf("field %q: key %q is the name of another field", f.Name, f.Key))
		}
	}
	return errors.Join(errs...)
}

// rawValue accepts the shapes produced by query.Group.
func rawValue(v any) (any, bool) {
	switch typed := v.(type) {
	case string:
		return typed, true
	case []string:
		return typed, true
	default:
		return nil, false
	}
}
