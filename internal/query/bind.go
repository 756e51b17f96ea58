package query

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// tagName is the struct tag read by Bind.
const tagName = "query"

// Bind parses params with v and decodes the coerced values into dst, which must be a
// pointer to a struct. Fields are matched by their `query` tag, then by name.
func Bind(params Params, v Validator, dst any) error {
	values, err := Parse(params, v)
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          tagName,
		Result:           dst,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("bind query params: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("bind query params: %w", err)
	}
	return nil
}
