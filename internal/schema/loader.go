package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and checks a YAML schema file.
func Load(path string) (*Schema, error) {
	if path == "" {
		return nil, fmt.Errorf("schema path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve schema path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read schema %q: %w", absPath, err)
	}

	s, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load schema %q: %w", absPath, err)
	}
	return s, nil
}

// ParseYAML decodes a schema definition and checks it.
func ParseYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	for i := range s.Fields {
		def, err := normalizeDefault(s.Fields[i].Default)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", s.Fields[i].Name, err)
		}
		s.Fields[i].Default = def
	}
	if s.Unknown == "" {
		s.Unknown = UnknownRaise
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// normalizeDefault turns YAML scalars and sequences into the string or []string
// shape that grouped query parameters have.
func normalizeDefault(v any) (any, error) {
	switch typed := v.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			s, err := scalarString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return scalarString(typed)
	}
}

func scalarString(v any) (string, error) {
	switch typed := v.(type) {
	case time.Time:
		return typed.Format(time.RFC3339Nano), nil
	case string, int, int64, uint64, float64, bool:
		return fmt.Sprint(typed), nil
	default:
		return "", fmt.Errorf("default value %v is not a scalar", v)
	}
}
