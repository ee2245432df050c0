package jsonschema

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// These tests exercise the eight seed scenarios a correct resolver and
// dispatcher must honor exactly, grounded on ref.go/validate.go's own
// *_test.go table-driven style.

func mustValidate(t *testing.T, v *Validator, schemaJSON, instanceJSON string) *Result {
	t.Helper()
	result, err := v.Validate(context.Background(), []byte(schemaJSON), []byte(instanceJSON))
	require.NoError(t, err)
	return result
}

func TestScenario1_IDResolutionInRefs(t *testing.T) {
	v := NewValidator()
	schema := `{
		"id": "http://example.com/root.json",
		"properties": {
			"inner": {
				"id": "http://example.com/inner/",
				"definitions": {
					"positive": {"type": "number", "exclusiveMinimum": 0}
				},
				"properties": {
					"value": {"$ref": "#/definitions/positive"}
				}
			}
		}
	}`

	okResult := mustValidate(t, v, schema, `{"inner": {"value": 5}}`)
	require.True(t, okResult.IsValid(), spew.Sdump(okResult))

	failResult := mustValidate(t, v, schema, `{"inner": {"value": -5}}`)
	require.False(t, failResult.IsValid())
	require.Len(t, failResult.Errors, 1)
	require.Equal(t, "#/inner/value", failResult.Errors[0].Path.String())
}

func TestScenario2_RequiredManyProperties(t *testing.T) {
	v := NewValidator()
	schema := `{"type": "object", "required": ["a", "b", "c", "d", "e"]}`
	result := mustValidate(t, v, schema, `{"a": 1, "c": 3}`)

	require.False(t, result.IsValid())
	require.Len(t, result.Errors, 3)
	for _, e := range result.Errors {
		require.Equal(t, "required", e.Keyword)
		require.Equal(t, "#", e.Path.String())
	}
}

func TestScenario3_RecursiveReference(t *testing.T) {
	v := NewValidator()
	schema := `{
		"id": "http://example.com/tree.json",
		"type": "object",
		"properties": {
			"value": {"type": "number"},
			"children": {
				"type": "array",
				"items": {"$ref": "#"}
			}
		}
	}`

	deep := `{"value": 1, "children": [{"value": 2, "children": [{"value": 3, "children": []}]}]}`
	result := mustValidate(t, v, schema, deep)
	require.True(t, result.IsValid(), spew.Sdump(result))

	broken := `{"value": 1, "children": [{"value": "not-a-number", "children": []}]}`
	result = mustValidate(t, v, schema, broken)
	require.False(t, result.IsValid())
	require.Equal(t, "#/children/0/value", result.Errors[0].Path.String())
}

func TestScenario4_PatternErrorEscaping(t *testing.T) {
	v := NewValidator()
	schema := `{"type": "string", "pattern": "^abc$"}`
	result := mustValidate(t, v, schema, `"xyz"`)

	require.False(t, result.IsValid())
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0].Message, "^abc$")
}

func TestScenario5_DollarPrefixedPropertyName(t *testing.T) {
	v := NewValidator()
	schema := `{
		"type": "object",
		"properties": {
			"id": {"type": "string"},
			"$id": {"type": "string"}
		}
	}`
	result := mustValidate(t, v, schema, `{"id": "not-a-scope-refinement", "$id": "also-just-a-string"}`)
	require.True(t, result.IsValid(), spew.Sdump(result))
}

func TestScenario6_DependenciesFail(t *testing.T) {
	v := NewValidator()
	schema := `{"type": "object", "dependencies": {"a": ["b"]}}`
	result := mustValidate(t, v, schema, `{"a": 1}`)

	require.False(t, result.IsValid())
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0].Message, "b")
}

func TestScenario7_RestoringRootAfterResolve(t *testing.T) {
	v := NewValidator()
	v.SetSchema("http://example.com/remote.json", mustParse(t, `{
		"id": "http://example.com/remote.json",
		"definitions": {
			"x": {"type": "string"}
		},
		"properties": {
			"inner": {"$ref": "#/definitions/x"}
		}
	}`))

	rootSchema := `{
		"id": "http://example.com/root.json",
		"definitions": {
			"x": {"type": "number"}
		},
		"properties": {
			"remote": {"$ref": "http://example.com/remote.json"},
			"local": {"$ref": "#/definitions/x"}
		}
	}`

	result := mustValidate(t, v, rootSchema, `{"remote": {"inner": "hi"}, "local": 42}`)
	require.True(t, result.IsValid(), spew.Sdump(result))

	result = mustValidate(t, v, rootSchema, `{"remote": {"inner": "hi"}, "local": "should be a number"}`)
	require.False(t, result.IsValid())
}

func TestScenario8_RootRefInRefInRemoteRef(t *testing.T) {
	v := NewValidator()
	v.SetSchema("http://example.com/c.json", mustParse(t, `{
		"id": "http://example.com/c.json",
		"type": "string"
	}`))
	v.SetSchema("http://example.com/b.json", mustParse(t, `{
		"id": "http://example.com/b.json",
		"$ref": "http://example.com/c.json#"
	}`))

	schema := `{"id": "http://example.com/a.json", "$ref": "http://example.com/b.json"}`

	result := mustValidate(t, v, schema, `"a string"`)
	require.True(t, result.IsValid(), spew.Sdump(result))

	result = mustValidate(t, v, schema, `42`)
	require.False(t, result.IsValid())
}

func mustParse(t *testing.T, schemaJSON string) *Schema {
	t.Helper()
	s, err := ParseSchema([]byte(schemaJSON))
	require.NoError(t, err)
	return s
}
