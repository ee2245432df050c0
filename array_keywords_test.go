package jsonschema

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestValidateArrayKeywordsNoopsOnNonArray(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Kind: KindArray, HasType: true}
	result := validateArrayKeywords(context.Background(), v, schema, "not an array", NewScope(schema))
	require.True(t, result.IsValid())
}

func TestValidateArrayKeywordsMinMaxItems(t *testing.T) {
	min, max := 1, 2
	schema := &Schema{MinItems: &min, MaxItems: &max}
	v := NewValidator()

	result := validateArrayKeywords(context.Background(), v, schema, []interface{}{}, NewScope(schema))
	require.False(t, result.IsValid())

	result = validateArrayKeywords(context.Background(), v, schema, []interface{}{1, 2, 3}, NewScope(schema))
	require.False(t, result.IsValid())

	result = validateArrayKeywords(context.Background(), v, schema, []interface{}{1}, NewScope(schema))
	require.True(t, result.IsValid())
}

func TestValidateArrayKeywordsUniqueItems(t *testing.T) {
	schema := &Schema{UniqueItems: true}
	v := NewValidator()

	result := validateArrayKeywords(context.Background(), v, schema,
		[]interface{}{json.Number("1"), json.Number("1")}, NewScope(schema))
	require.False(t, result.IsValid())

	result = validateArrayKeywords(context.Background(), v, schema,
		[]interface{}{json.Number("1"), json.Number("2")}, NewScope(schema))
	require.True(t, result.IsValid())
}

func TestValidateArrayKeywordsItemsAppliesToEveryElement(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Items: &Schema{Kind: KindNumber, HasType: true}}
	result := validateArrayKeywords(context.Background(), v, schema,
		[]interface{}{json.Number("1"), "not a number"}, NewScope(schema))
	require.False(t, result.IsValid())
}

func TestValidateArrayKeywordsContains(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Contains: &Schema{Kind: KindNumber, HasType: true}}

	result := validateArrayKeywords(context.Background(), v, schema,
		[]interface{}{"a", "b"}, NewScope(schema))
	require.False(t, result.IsValid())

	result = validateArrayKeywords(context.Background(), v, schema,
		[]interface{}{"a", json.Number("2")}, NewScope(schema))
	require.True(t, result.IsValid())
}

func TestDeepEqualJSONNumericCrossRepresentation(t *testing.T) {
	require.True(t, deepEqualJSON(json.Number("1"), json.Number("1.0")))
	require.True(t, deepEqualJSON(float64(2), json.Number("2")))
	require.False(t, deepEqualJSON(json.Number("1"), json.Number("2")))
}

func TestDeepEqualJSONObjectsIgnoreKeyOrder(t *testing.T) {
	a := map[string]interface{}{"x": json.Number("1"), "y": json.Number("2")}
	b := map[string]interface{}{"y": json.Number("2"), "x": json.Number("1")}
	require.True(t, deepEqualJSON(a, b))
}
