package jsonschema

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestValidateSharedKeywordsConst(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Const: &ConstValue{Value: json.Number("42"), IsSet: true}}

	require.True(t, validateSharedKeywords(context.Background(), v, schema, json.Number("42"), NewScope(schema)).IsValid())
	result := validateSharedKeywords(context.Background(), v, schema, json.Number("7"), NewScope(schema))
	require.False(t, result.IsValid())
	require.Equal(t, "const", result.Errors[0].Keyword)
}

func TestValidateSharedKeywordsConstAllowsExplicitNull(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Const: &ConstValue{Value: nil, IsSet: true}}
	require.True(t, validateSharedKeywords(context.Background(), v, schema, nil, NewScope(schema)).IsValid())
}

func TestValidateSharedKeywordsEnum(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Enum: []interface{}{"a", "b", json.Number("3")}}

	require.True(t, validateSharedKeywords(context.Background(), v, schema, "b", NewScope(schema)).IsValid())
	require.True(t, validateSharedKeywords(context.Background(), v, schema, json.Number("3"), NewScope(schema)).IsValid())

	result := validateSharedKeywords(context.Background(), v, schema, "c", NewScope(schema))
	require.False(t, result.IsValid())
	require.Equal(t, "enum", result.Errors[0].Keyword)
}
