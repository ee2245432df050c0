package jsonschema

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"strings"

	goccyjson "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Decoder turns an encoded string instance into raw bytes.
type Decoder func(value string) ([]byte, error)

// MediaTypeParser parses decoded bytes into a Go value the dispatcher can
// recurse into for contentSchema.
type MediaTypeParser func(data []byte) (interface{}, error)

// defaultDecoders/defaultMediaTypes are the package-level registries a
// fresh Validator starts from, grounded on content.go's Decoders/
// MediaTypes maps on *Compiler.
var defaultDecoders = map[string]Decoder{
	"base64": func(value string) ([]byte, error) {
		return base64.StdEncoding.DecodeString(value)
	},
}

var defaultMediaTypes = map[string]MediaTypeParser{
	"application/json": func(data []byte) (interface{}, error) {
		var v interface{}
		dec := goccyjson.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err := dec.Decode(&v)
		return v, err
	},
	"application/yaml": func(data []byte) (interface{}, error) {
		var v interface{}
		err := yaml.Unmarshal(data, &v)
		return v, err
	},
	"application/xml": func(data []byte) (interface{}, error) {
		return xmlToGeneric(data)
	},
}

// xmlToGeneric parses an XML document into the same generic
// map[string]interface{}/[]interface{}/string tree shape the JSON and
// YAML parsers above produce, so contentSchema validates XML instances
// the same way it validates any other contentMediaType. encoding/xml's
// Unmarshal does not support a bare interface{} target the way
// encoding/json does, so the tree is built by hand from the token
// stream instead.
func xmlToGeneric(data []byte) (interface{}, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return decodeXMLElement(dec, start)
		}
	}
}

// decodeXMLElement recursively decodes one element (already consumed as
// start) into a map keyed by attribute name (prefixed "@") and child
// element name, collapsing a repeated child name into a slice. A
// childless element with no attributes decodes to its trimmed character
// data directly, matching how a leaf JSON/YAML scalar decodes.
func decodeXMLElement(dec *xml.Decoder, start xml.StartElement) (interface{}, error) {
	attrs := make(map[string]interface{}, len(start.Attr))
	for _, a := range start.Attr {
		attrs["@"+a.Name.Local] = a.Value
	}
	children := make(map[string][]interface{})
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeXMLElement(dec, t)
			if err != nil {
				return nil, err
			}
			children[t.Name.Local] = append(children[t.Name.Local], child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(children) == 0 && len(attrs) == 0 {
				return strings.TrimSpace(text.String()), nil
			}
			node := make(map[string]interface{}, len(attrs)+len(children)+1)
			for k, v := range attrs {
				node[k] = v
			}
			for name, values := range children {
				if len(values) == 1 {
					node[name] = values[0]
				} else {
					node[name] = values
				}
			}
			if len(children) == 0 {
				if trimmed := strings.TrimSpace(text.String()); trimmed != "" {
					node["#text"] = trimmed
				}
			}
			return node, nil
		}
	}
}

// evaluateContent implements contentEncoding/contentMediaType/
// contentSchema: decode the string per contentEncoding, parse it per
// contentMediaType, then re-enter the dispatcher against contentSchema.
// Grounded on content.go's evaluateContent.
func evaluateContent(ctx context.Context, v *Validator, schema *Schema, s string, scope Scope) *Result {
	if schema.ContentEncoding == "" && schema.ContentMediaType == "" {
		return Valid()
	}
	result := Valid()

	raw := []byte(s)
	if schema.ContentEncoding != "" {
		decode, ok := v.decoders[schema.ContentEncoding]
		if !ok {
			return result
		}
		decoded, err := decode(s)
		if err != nil {
			result.AddError(scope.InstancePath, "contentEncoding",
				map[string]interface{}{"encoding": schema.ContentEncoding}, s)
			return result
		}
		raw = decoded
	}

	if schema.ContentMediaType == "" {
		return result
	}
	parse, ok := v.mediaTypes[schema.ContentMediaType]
	if !ok {
		return result
	}
	parsed, err := parse(raw)
	if err != nil {
		result.AddError(scope.InstancePath, "contentMediaType",
			map[string]interface{}{"mediaType": schema.ContentMediaType}, s)
		return result
	}

	if schema.ContentSchema != nil {
		result.Merge(v.process(ctx, schema.ContentSchema, parsed, scope.WithSchemaPath("contentSchema")))
	}
	return result
}
