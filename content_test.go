package jsonschema

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateContentNoopWithoutEncodingOrMediaType(t *testing.T) {
	v := NewValidator()
	schema := &Schema{}
	result := evaluateContent(context.Background(), v, schema, "anything", NewScope(schema))
	require.True(t, result.IsValid())
}

func TestEvaluateContentBase64DecodeFailure(t *testing.T) {
	v := NewValidator()
	schema := &Schema{ContentEncoding: "base64"}
	result := evaluateContent(context.Background(), v, schema, "not valid base64!!", NewScope(schema))
	require.False(t, result.IsValid())
	require.Equal(t, "contentEncoding", result.Errors[0].Keyword)
}

func TestEvaluateContentJSONMediaTypeRecursesIntoContentSchema(t *testing.T) {
	v := NewValidator()
	schema := &Schema{
		ContentMediaType: "application/json",
		ContentSchema:    &Schema{Required: []string{"name"}},
	}

	result := evaluateContent(context.Background(), v, schema, `{"name": "a"}`, NewScope(schema))
	require.True(t, result.IsValid())

	result = evaluateContent(context.Background(), v, schema, `{}`, NewScope(schema))
	require.False(t, result.IsValid())
}

func TestEvaluateContentBase64ThenJSON(t *testing.T) {
	v := NewValidator()
	schema := &Schema{
		ContentEncoding:  "base64",
		ContentMediaType: "application/json",
		ContentSchema:    &Schema{Required: []string{"ok"}},
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(`{"ok": true}`))

	result := evaluateContent(context.Background(), v, schema, encoded, NewScope(schema))
	require.True(t, result.IsValid())
}

func TestEvaluateContentUnknownMediaTypePassesThrough(t *testing.T) {
	v := NewValidator()
	schema := &Schema{ContentMediaType: "application/x-unregistered"}
	result := evaluateContent(context.Background(), v, schema, "anything", NewScope(schema))
	require.True(t, result.IsValid())
}

func TestXMLToGenericParsesElementsAttributesAndText(t *testing.T) {
	parsed, err := xmlToGeneric([]byte(`<person id="1"><name>Ada</name></person>`))
	require.NoError(t, err)

	obj, ok := parsed.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "1", obj["@id"])
	require.Equal(t, "Ada", obj["name"])
}

func TestXMLToGenericRepeatedChildrenBecomeSlice(t *testing.T) {
	parsed, err := xmlToGeneric([]byte(`<people><name>Ada</name><name>Grace</name></people>`))
	require.NoError(t, err)

	obj, ok := parsed.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, []interface{}{"Ada", "Grace"}, obj["name"])
}

func TestEvaluateContentXMLMediaTypeRecursesIntoContentSchema(t *testing.T) {
	v := NewValidator()
	schema := &Schema{
		ContentMediaType: "application/xml",
		ContentSchema:    &Schema{Required: []string{"name"}},
	}

	result := evaluateContent(context.Background(), v, schema, `<person><name>Ada</name></person>`, NewScope(schema))
	require.True(t, result.IsValid())

	result = evaluateContent(context.Background(), v, schema, `<person id="1"></person>`, NewScope(schema))
	require.False(t, result.IsValid())
}
