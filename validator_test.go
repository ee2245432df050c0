package jsonschema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidatorRegistersDefaultLoadersAndRegistries(t *testing.T) {
	v := NewValidator()
	require.NotNil(t, v.Registry)
	require.Contains(t, v.loaders, "http")
	require.Contains(t, v.loaders, "https")
	require.Contains(t, v.decoders, "base64")
	require.Contains(t, v.mediaTypes, "application/json")
}

func TestWithDefaultBaseURIAndAssertFormatChain(t *testing.T) {
	v := NewValidator().WithDefaultBaseURI("http://example.com/").WithAssertFormat(true)
	require.Equal(t, "http://example.com/", v.DefaultBaseURI)
	require.True(t, v.AssertFormat)
}

func TestRegisterFormatDecoderMediaType(t *testing.T) {
	v := NewValidator()
	v.RegisterFormat("custom", func(string) bool { return true })
	v.RegisterDecoder("custom-enc", func(string) ([]byte, error) { return nil, nil })
	v.RegisterMediaType("application/custom", func([]byte) (interface{}, error) { return nil, nil })

	require.Contains(t, v.customFormats, "custom")
	require.Contains(t, v.decoders, "custom-enc")
	require.Contains(t, v.mediaTypes, "application/custom")
}

func TestSetSchemaAndFetchDocumentCacheHit(t *testing.T) {
	v := NewValidator()
	doc := &Schema{Kind: KindString, HasType: true}
	v.SetSchema("http://example.com/a.json", doc)

	got, err := v.fetchDocument(context.Background(), "http://example.com/a.json")
	require.NoError(t, err)
	require.Same(t, doc, got)
}

func TestFetchUnsupportedSchemeErrors(t *testing.T) {
	v := NewValidator()
	_, err := v.fetch(context.Background(), "ftp://example.com/a.json")
	require.ErrorIs(t, err, ErrSchemeNotSupported)
}

func TestPreloadSchemasSkipsAlreadyCachedWithoutNetwork(t *testing.T) {
	v := NewValidator()
	v.SetSchema("http://example.com/already-cached.json", &Schema{Kind: KindString})

	err := v.PreloadSchemas(context.Background(), []string{"http://example.com/already-cached.json"})
	require.NoError(t, err)
}

func TestValidateEndToEnd(t *testing.T) {
	v := NewValidator()
	result, err := v.Validate(context.Background(),
		[]byte(`{"type": "object", "properties": {"n": {"type": "integer", "minimum": 0}}}`),
		[]byte(`{"n": 5}`))
	require.NoError(t, err)
	require.True(t, result.IsValid())

	result, err = v.Validate(context.Background(),
		[]byte(`{"type": "object", "properties": {"n": {"type": "integer", "minimum": 0}}}`),
		[]byte(`{"n": -5}`))
	require.NoError(t, err)
	require.False(t, result.IsValid())
}

func TestValidateInvalidSchemaJSONErrors(t *testing.T) {
	v := NewValidator()
	_, err := v.Validate(context.Background(), []byte(`not json`), []byte(`{}`))
	require.Error(t, err)
}
