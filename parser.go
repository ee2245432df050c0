package jsonschema

import (
	"bytes"
	"regexp"

	"github.com/goccy/go-json"
)

// schemaKeywordNames lists every keyword this parser understands
// structurally; anything else in a schema object is retained verbatim in
// Constraints. Grounded on schema.go's knownSchemaFields map.
var schemaKeywordNames = map[string]bool{
	"$ref": true, "ref": true, "id": true, "type": true,
	"anyOf": true, "allOf": true, "oneOf": true, "not": true,
	"properties": true, "patternProperties": true, "additionalProperties": true,
	"required": true, "dependencies": true, "minProperties": true, "maxProperties": true,
	"propertyNames": true, "definitions": true, "$defs": true,
	"items": true, "additionalItems": true, "minItems": true, "maxItems": true,
	"uniqueItems": true, "contains": true,
	"minimum": true, "maximum": true, "exclusiveMinimum": true, "exclusiveMaximum": true,
	"multipleOf": true,
	"minLength": true, "maxLength": true, "pattern": true,
	"enum": true, "const": true,
	"format": true, "contentEncoding": true, "contentMediaType": true, "contentSchema": true,
}

// ParseSchema parses a JSON schema document into the tagged Schema tree
// of §3, classifying each node's Kind before decoding its fields —
// grounded on schema.go's UnmarshalJSON peek-before-decode technique,
// and on other_examples' gojsonschema schemaPool.ParseDocument for the
// rule that "id" only refines scope at true schema-node positions.
func ParseSchema(data []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, ErrInvalidSchemaJSON
	}
	return buildSchema(raw, true)
}

// buildSchema turns one raw decoded JSON value into a Schema node.
// isSchemaPosition is false when raw is a map value reached through a
// position that is never itself a schema node (a property *name*, for
// instance) — callers only ever invoke it with true, since every call
// site in this file passes a genuine schema position; a dependency's
// required-property list is handled separately in decodeObjectKeywords
// and never routed through buildSchema at all.
func buildSchema(raw interface{}, isSchemaPosition bool) (*Schema, error) {
	switch v := raw.(type) {
	case bool:
		b := v
		return &Schema{Bool: &b}, nil
	case map[string]interface{}:
		return buildObjectSchema(v)
	default:
		return nil, ErrUnknownKind
	}
}

func buildObjectSchema(m map[string]interface{}) (*Schema, error) {
	s := &Schema{Constraints: make(map[string]interface{})}

	if refVal, ok := stringField(m, "$ref"); ok {
		s.Kind = KindRef
		s.Ref = refVal
	} else if refVal, ok := stringField(m, "ref"); ok {
		s.Kind = KindRef
		s.Ref = refVal
	}

	if idVal, ok := stringField(m, "id"); ok {
		s.ID = idVal
	}

	if combinator, branches, notSchema, ok, err := parseCombinator(m); err != nil {
		return nil, err
	} else if ok && s.Kind != KindRef {
		s.Kind = KindCompound
		s.Combinator = combinator
		s.Branches = branches
		s.NotSchema = notSchema
	}

	if s.Kind != KindRef && s.Kind != KindCompound {
		if typeName, ok := stringField(m, "type"); ok {
			s.HasType = true
			switch typeName {
			case "object":
				s.Kind = KindObject
			case "array":
				if items, ok := m["items"]; ok {
					if _, isArray := items.([]interface{}); isArray {
						s.Kind = KindTuple
					} else {
						s.Kind = KindArray
					}
				} else {
					s.Kind = KindArray
				}
			case "number":
				s.Kind = KindNumber
			case "integer":
				s.Kind = KindInteger
			case "string":
				s.Kind = KindString
			case "boolean":
				s.Kind = KindBoolean
			case "null":
				s.Kind = KindNull
			default:
				s.HasType = false
				s.Kind = KindAny
			}
		} else {
			// No declared type: per §10, Kind stays the open/untyped
			// kind (KindAny) and HasType is false. The dispatcher
			// invokes the object-keyword group for any untyped node
			// regardless of Kind (dispatch.go's "|| !schema.HasType"
			// branches), so classification here has no bearing on
			// which keywords actually apply — only on the type-mismatch
			// guard, which untyped nodes skip entirely.
			s.Kind = KindAny
		}
	}

	if err := decodeObjectKeywords(m, s); err != nil {
		return nil, err
	}
	if err := decodeArrayKeywords(m, s); err != nil {
		return nil, err
	}
	if err := decodeNumericKeywords(m, s); err != nil {
		return nil, err
	}
	if err := decodeStringKeywords(m, s); err != nil {
		return nil, err
	}
	if err := decodeSharedKeywords(m, s); err != nil {
		return nil, err
	}

	if defs, ok := m["definitions"].(map[string]interface{}); ok {
		s.Definitions = map[string]*Schema{}
		for name, raw := range defs {
			child, err := buildSchema(raw, true)
			if err != nil {
				return nil, err
			}
			s.Definitions[name] = child
		}
	}
	if defs, ok := m["$defs"].(map[string]interface{}); ok {
		if s.Definitions == nil {
			s.Definitions = map[string]*Schema{}
		}
		for name, raw := range defs {
			child, err := buildSchema(raw, true)
			if err != nil {
				return nil, err
			}
			s.Definitions[name] = child
		}
	}

	for k, v := range m {
		if !schemaKeywordNames[k] {
			s.Constraints[k] = v
		}
	}

	return s, nil
}

func stringField(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func parseCombinator(m map[string]interface{}) (Combinator, []*Schema, *Schema, bool, error) {
	if list, ok := m["anyOf"].([]interface{}); ok {
		branches, err := buildSchemaList(list)
		return CombinatorAnyOf, branches, nil, true, err
	}
	if list, ok := m["allOf"].([]interface{}); ok {
		branches, err := buildSchemaList(list)
		return CombinatorAllOf, branches, nil, true, err
	}
	if list, ok := m["oneOf"].([]interface{}); ok {
		branches, err := buildSchemaList(list)
		return CombinatorOneOf, branches, nil, true, err
	}
	if raw, ok := m["not"]; ok {
		child, err := buildSchema(raw, true)
		return CombinatorNot, nil, child, true, err
	}
	return 0, nil, nil, false, nil
}

func buildSchemaList(list []interface{}) ([]*Schema, error) {
	out := make([]*Schema, len(list))
	for i, raw := range list {
		child, err := buildSchema(raw, true)
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

func decodeObjectKeywords(m map[string]interface{}, s *Schema) error {
	if propsRaw, ok := m["properties"].(map[string]interface{}); ok {
		s.Properties = map[string]*Schema{}
		for name, raw := range propsRaw {
			// A properties map's VALUES are schema positions (so a
			// nested "id" there refines scope); its KEYS never are,
			// even when a key happens to be literally "id" or "$ref" —
			// resolving the open question in §9.
			child, err := buildSchema(raw, true)
			if err != nil {
				return err
			}
			s.Properties[name] = child
		}
	}
	if ppRaw, ok := m["patternProperties"].(map[string]interface{}); ok {
		s.PatternProperties = map[string]*Schema{}
		s.compiledPatternProps = map[string]*regexp.Regexp{}
		for pattern, raw := range ppRaw {
			child, err := buildSchema(raw, true)
			if err != nil {
				return err
			}
			s.PatternProperties[pattern] = child
			if re, err := regexp.Compile(pattern); err == nil {
				s.compiledPatternProps[pattern] = re
			}
		}
	}
	if ap, ok := m["additionalProperties"]; ok {
		child, err := buildSchema(ap, true)
		if err != nil {
			return err
		}
		s.AdditionalProperties = child
	}
	if req, ok := m["required"].([]interface{}); ok {
		for _, r := range req {
			if name, ok := r.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}
	if deps, ok := m["dependencies"].(map[string]interface{}); ok {
		s.Dependencies = map[string]Dependency{}
		for name, raw := range deps {
			switch depVal := raw.(type) {
			case []interface{}:
				var required []string
				for _, r := range depVal {
					if str, ok := r.(string); ok {
						required = append(required, str)
					}
				}
				s.Dependencies[name] = Dependency{RequiredProps: required}
			default:
				child, err := buildSchema(raw, true)
				if err != nil {
					return err
				}
				s.Dependencies[name] = Dependency{Schema: child}
			}
		}
	}
	if n, ok := intField(m, "minProperties"); ok {
		s.MinProperties = &n
	}
	if n, ok := intField(m, "maxProperties"); ok {
		s.MaxProperties = &n
	}
	if pn, ok := m["propertyNames"]; ok {
		child, err := buildSchema(pn, true)
		if err != nil {
			return err
		}
		s.PropertyNames = child
	}
	return nil
}

func decodeArrayKeywords(m map[string]interface{}, s *Schema) error {
	if items, ok := m["items"]; ok {
		switch v := items.(type) {
		case []interface{}:
			list, err := buildSchemaList(v)
			if err != nil {
				return err
			}
			s.TupleItems = list
		default:
			child, err := buildSchema(items, true)
			if err != nil {
				return err
			}
			s.Items = child
		}
	}
	if ai, ok := m["additionalItems"]; ok {
		child, err := buildSchema(ai, true)
		if err != nil {
			return err
		}
		s.AdditionalItems = child
	}
	if n, ok := intField(m, "minItems"); ok {
		s.MinItems = &n
	}
	if n, ok := intField(m, "maxItems"); ok {
		s.MaxItems = &n
	}
	if b, ok := m["uniqueItems"].(bool); ok {
		s.UniqueItems = b
	}
	if c, ok := m["contains"]; ok {
		child, err := buildSchema(c, true)
		if err != nil {
			return err
		}
		s.Contains = child
	}
	return nil
}

func decodeNumericKeywords(m map[string]interface{}, s *Schema) error {
	assign := func(key string) *Rat {
		r, ok := ratField(m, key)
		if !ok {
			return nil
		}
		return r
	}
	s.Minimum = assign("minimum")
	s.Maximum = assign("maximum")
	s.ExclusiveMinimum = assign("exclusiveMinimum")
	s.ExclusiveMaximum = assign("exclusiveMaximum")
	s.MultipleOf = assign("multipleOf")
	return nil
}

func decodeStringKeywords(m map[string]interface{}, s *Schema) error {
	if n, ok := intField(m, "minLength"); ok {
		s.MinLength = &n
	}
	if n, ok := intField(m, "maxLength"); ok {
		s.MaxLength = &n
	}
	if p, ok := stringField(m, "pattern"); ok {
		s.Pattern = p
		if re, err := regexp.Compile(p); err == nil {
			s.compiledPattern = re
		}
	}
	return nil
}

func decodeSharedKeywords(m map[string]interface{}, s *Schema) error {
	if enum, ok := m["enum"].([]interface{}); ok {
		s.Enum = enum
	}
	if constVal, ok := m["const"]; ok {
		s.Const = &ConstValue{Value: constVal, IsSet: true}
	}
	if format, ok := stringField(m, "format"); ok {
		s.Format = format
	}
	if ce, ok := stringField(m, "contentEncoding"); ok {
		s.ContentEncoding = ce
	}
	if cmt, ok := stringField(m, "contentMediaType"); ok {
		s.ContentMediaType = cmt
	}
	if cs, ok := m["contentSchema"]; ok {
		child, err := buildSchema(cs, true)
		if err != nil {
			return err
		}
		s.ContentSchema = child
	}
	return nil
}

func intField(m map[string]interface{}, key string) (int, bool) {
	switch v := m[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func ratField(m map[string]interface{}, key string) (*Rat, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	r, ok := ratFromInstance(v)
	return r, ok
}

// parseInstance decodes raw JSON into the value shapes classifyInstance
// and the keyword library expect (json.Number for every numeric literal,
// so integer-ness can be judged exactly rather than through float64).
func parseInstance(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
