package jsonschema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateStringKeywordsNoopsOnNonString(t *testing.T) {
	v := NewValidator()
	min := 3
	schema := &Schema{MinLength: &min}
	result := validateStringKeywords(context.Background(), v, schema, 42, NewScope(schema))
	require.True(t, result.IsValid())
}

func TestValidateStringKeywordsMinMaxLengthCountsRunes(t *testing.T) {
	v := NewValidator()
	min, max := 2, 4
	schema := &Schema{MinLength: &min, MaxLength: &max}

	require.False(t, validateStringKeywords(context.Background(), v, schema, "a", NewScope(schema)).IsValid())
	require.True(t, validateStringKeywords(context.Background(), v, schema, "água", NewScope(schema)).IsValid())
	require.False(t, validateStringKeywords(context.Background(), v, schema, "toolong", NewScope(schema)).IsValid())
}

func TestValidateStringKeywordsPatternErrorEscapesBackslashes(t *testing.T) {
	v := NewValidator()
	s, err := ParseSchema([]byte(`{"type": "string", "pattern": "^\\d+$"}`))
	require.NoError(t, err)

	result := validateStringKeywords(context.Background(), v, s, "not-digits", NewScope(s))
	require.False(t, result.IsValid())
	require.Contains(t, result.Errors[0].Message, `\\d+`)
}

func TestValidateStringKeywordsFormatSilentByDefault(t *testing.T) {
	v := NewValidator()
	s, err := ParseSchema([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	result := validateStringKeywords(context.Background(), v, s, "not-an-email", NewScope(s))
	require.True(t, result.IsValid(), "format mismatches are silently ignored unless AssertFormat is set")
}

func TestValidateStringKeywordsFormatAssertedWhenEnabled(t *testing.T) {
	v := NewValidator().WithAssertFormat(true)
	s, err := ParseSchema([]byte(`{"type": "string", "format": "email"}`))
	require.NoError(t, err)

	result := validateStringKeywords(context.Background(), v, s, "not-an-email", NewScope(s))
	require.False(t, result.IsValid())

	result = validateStringKeywords(context.Background(), v, s, "person@example.com", NewScope(s))
	require.True(t, result.IsValid())
}
