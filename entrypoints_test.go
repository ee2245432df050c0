package jsonschema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct {
	Name string `json:"name"`
}

func TestValidateJSON(t *testing.T) {
	v := NewValidator()
	result, err := ValidateJSON(context.Background(), v,
		[]byte(`{"type": "object", "required": ["name"]}`), []byte(`{"name": "x"}`))
	require.NoError(t, err)
	require.True(t, result.IsValid())
}

func TestValidateJSONIntoDecodesOnSuccess(t *testing.T) {
	v := NewValidator()
	var out widget
	result, err := ValidateJSONInto(context.Background(), v,
		[]byte(`{"type": "object", "required": ["name"]}`), []byte(`{"name": "gizmo"}`), &out)
	require.NoError(t, err)
	require.True(t, result.IsValid())
	require.Equal(t, "gizmo", out.Name)
}

func TestValidateJSONIntoSkipsDecodeOnFailure(t *testing.T) {
	v := NewValidator()
	var out widget
	result, err := ValidateJSONInto(context.Background(), v,
		[]byte(`{"type": "object", "required": ["name"]}`), []byte(`{}`), &out)
	require.NoError(t, err)
	require.False(t, result.IsValid())
	require.Equal(t, "", out.Name, "must not decode into out when validation failed")
}

func TestValidateValueMarshalsThenValidates(t *testing.T) {
	v := NewValidator()
	result, err := ValidateValue(context.Background(), v,
		[]byte(`{"type": "object", "required": ["name"]}`), widget{Name: "gizmo"})
	require.NoError(t, err)
	require.True(t, result.IsValid())
}

func TestValidateValueRoundTrip(t *testing.T) {
	v := NewValidator()
	var out widget
	result, err := ValidateValueRoundTrip(context.Background(), v,
		[]byte(`{"type": "object", "required": ["name"]}`), widget{Name: "gizmo"}, &out)
	require.NoError(t, err)
	require.True(t, result.IsValid())
	require.Equal(t, "gizmo", out.Name)
}
