package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnknownPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want UnknownPolicy
	}{
		{in: "", want: UnknownRaise},
		{in: "raise", want: UnknownRaise},
		{in: " Exclude ", want: UnknownExclude},
		{in: "INCLUDE", want: UnknownInclude},
	}
	for _, tt := range tests {
		got, err := ParseUnknownPolicy(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseUnknownPolicy("ignore")
	assert.EqualError(t, err, `unknown policy "ignore" (expected raise, exclude or include)`)
}

func TestNew_RejectsBadDeclarations(t *testing.T) {
	tests := []struct {
		name    string
		unknown UnknownPolicy
		fields  []Field
		errPart string
	}{
		{
			name:    "empty name",
			fields:  []Field{{Type: TypeString}},
			errPart: "field #0: name is empty",
		},
		{
			name:    "duplicate name",
			fields:  []Field{{Name: "a", Type: TypeString}, {Name: "a", Key: "b", Type: TypeString}},
			errPart: `field "a": duplicate name`,
		},
		{
			name:    "duplicate key",
			fields:  []Field{{Name: "a", Type: TypeString}, {Name: "b", Key: "a", Type: TypeString}},
			errPart: `field "b": duplicate key "a"`,
		},
		{
			name:    "key shadows another field name",
			fields:  []Field{{Name: "limit", Key: "l", Type: TypeInteger}, {Name: "page", Key: "limit", Type: TypeInteger}},
			errPart: `field "page": key "limit" is the name of another field`,
		},
		{
			name:    "unknown type",
			fields:  []Field{{Name: "a", Type: "decimal"}},
			errPart: `field "a": unknown type "decimal"`,
		},
		{
			name:    "required with default",
			fields:  []Field{{Name: "a", Type: TypeInteger, Required: true, Default: "1"}},
			errPart: "default must not be set for required fields",
		},
		{
			name:    "default of wrong shape",
			fields:  []Field{{Name: "a", Type: TypeInteger, Default: 1}},
			errPart: "default must be a string or a list of strings",
		},
		{
			name:    "item bounds on scalar",
			fields:  []Field{{Name: "a", Type: TypeInteger, MaxItems: ptr(3)}},
			errPart: "minItems/maxItems require a list field",
		},
		{
			name:    "inverted range",
			fields:  []Field{{Name: "a", Type: TypeInteger, Min: ptr(5.0), Max: ptr(1.0)}},
			errPart: "min 5 is greater than max 1",
		},
		{
			name:    "inverted item bounds",
			fields:  []Field{{Name: "a", Type: TypeInteger, List: true, MinItems: ptr(3), MaxItems: ptr(1)}},
			errPart: "minItems 3 is greater than maxItems 1",
		},
		{
			name:    "bad unknown policy",
			unknown: "skip",
			fields:  []Field{{Name: "a", Type: TypeString}},
			errPart: `unknown policy "skip"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.unknown, tt.fields...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestNew_ReportsAllProblems(t *testing.T) {
	_, err := New(UnknownRaise, Field{Name: "a", Type: "x"}, Field{Name: "b", Type: "y"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "a": unknown type "x"`)
	assert.Contains(t, err.Error(), `field "b": unknown type "y"`)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(UnknownRaise, Field{Name: "a"})
	})
}

func TestCheck_Nil(t *testing.T) {
	var s *Schema

	assert.EqualError(t, s.Check(), "schema is nil")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string][]string{
		"limit":   {"Missing data for required field."},
		"item_id": {"index 0: Not a valid integer.", "Longer than maximum length 1."},
	}}

	assert.Equal(t,
		"validation failed: item_id: index 0: Not a valid integer., Longer than maximum length 1.; limit: Missing data for required field.",
		err.Error())
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
}

func TestIsValidationError(t *testing.T) {
	verr := &ValidationError{Fields: map[string][]string{"a": {"Unknown field."}}}

	assert.True(t, IsValidationError(verr))
	assert.True(t, IsValidationError(fmtWrap(verr)))
	assert.False(t, IsValidationError(assert.AnError))
	assert.False(t, IsValidationError(nil))
}
