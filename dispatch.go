package jsonschema

import (
	"context"
	"math/big"

	"github.com/goccy/go-json"
)

// process implements §4.6, the validation dispatcher: it walks schema and
// instance together, resolving $refs before any keyword on the referring
// node runs (the ordering guarantee of §5), then dispatches to the
// keyword-validator group matching the (instance kind, schema kind) pair.
//
// Unlike a single exclusive switch over dispatch-table rows, this mirrors
// validate.go's sequential, nil-guarded group dispatch: the shared-keyword
// group always runs, and the kind-specific group runs whenever the schema
// kind matches the instance OR the schema declared no type at all — which
// is exactly how an "Object-shaped, no declared type" schema ends up
// validating any instance while still enforcing its object-only keywords
// when the instance happens to be an object (§4.6's key subtlety).
func (v *Validator) process(ctx context.Context, schema *Schema, instance interface{}, scope Scope) *Result {
	if schema == nil {
		return Valid()
	}
	if schema.IsBooleanSchema() {
		if *schema.Bool {
			return Valid()
		}
		return Invalid(scope.InstancePath, "instance does not satisfy an always-false schema", instance)
	}

	if schema.ID != "" {
		// A nested id both refines the base URI used to compose further
		// refs AND anchors this node itself as the effective document
		// root for "#"-prefixed fragment lookups: a ref like "#/foo"
		// composed against this id resolves within this subtree, not by
		// fetching a separate document (§4.1/§9, scenario 1). The document
		// root's own id keeps the scope a root scope; only an id below it
		// leaves the root scope.
		isRoot := scope.IsRoot && schema == scope.Root
		scope = scope.WithID(schema.ID)
		scope = scope.WithRoot(schema)
		scope.IsRoot = isRoot
	}

	if schema.Kind == KindRef {
		resolved, nextScope, err := v.Resolve(ctx, schema.Ref, scope)
		if err != nil {
			return Invalid(scope.InstancePath, err.Error(), instance)
		}
		return v.process(ctx, resolved, instance, nextScope)
	}

	if schema.Kind == KindCompound {
		return v.invoke(ctx, KindCompound, schema, instance, scope)
	}

	instanceKind := classifyInstance(instance)

	if schema.HasType && !kindMatchesInstance(schema.Kind, instanceKind) {
		return InvalidKeyword(scope.InstancePath, "type",
			map[string]interface{}{"expected": schema.Kind.String(), "actual": instanceKind}, instance)
	}

	result := v.invoke(ctx, KindAny, schema, instance, scope)

	switch {
	case instanceKind == "object" && (schema.Kind == KindObject || !schema.HasType):
		result = result.Merge(v.invoke(ctx, KindObject, schema, instance, scope))
	case instanceKind == "array" && schema.Kind == KindTuple:
		result = result.Merge(v.invoke(ctx, KindTuple, schema, instance, scope))
	case instanceKind == "array" && (schema.Kind == KindArray || !schema.HasType):
		result = result.Merge(v.invoke(ctx, KindArray, schema, instance, scope))
	case instanceKind == "number" && (schema.Kind == KindNumber || schema.Kind == KindInteger || !schema.HasType):
		result = result.Merge(v.invoke(ctx, KindNumber, schema, instance, scope))
	case instanceKind == "string" && (schema.Kind == KindString || !schema.HasType):
		result = result.Merge(v.invoke(ctx, KindString, schema, instance, scope))
	}

	return result
}

func (v *Validator) invoke(ctx context.Context, kind Kind, schema *Schema, instance interface{}, scope Scope) *Result {
	kv, ok := v.Registry.Lookup(kind)
	if !ok {
		return Valid()
	}
	return kv(ctx, v, schema, instance, scope)
}

// kindMatchesInstance reports whether a declared schema Kind is even
// eligible to apply to an instance of the given classifyInstance kind.
// Integer is deliberately permissive here (any JSON number is eligible);
// the integral-value requirement is a keyword-level check, not a
// dispatch-level type mismatch, per §4.6's dispatch table.
func kindMatchesInstance(k Kind, instanceKind string) bool {
	switch k {
	case KindObject:
		return instanceKind == "object"
	case KindArray, KindTuple:
		return instanceKind == "array"
	case KindNumber, KindInteger:
		return instanceKind == "number"
	case KindString:
		return instanceKind == "string"
	case KindBoolean:
		return instanceKind == "boolean"
	case KindNull:
		return instanceKind == "null"
	default:
		return true
	}
}

// classifyInstance identifies the JSON Schema instance kind of a decoded
// Go value, grounded on utils.go's getDataType but trimmed to the shapes
// goccy/go-json actually produces for an untyped decode (map[string]any,
// []any, json.Number, string, bool, nil).
func classifyInstance(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		_ = val
		return "unknown"
	}
}

// isIntegral reports whether a numeric instance value carries no
// fractional part, used by numeric_keywords.go to enforce the Integer
// kind's extra requirement.
func isIntegral(v interface{}) bool {
	switch val := v.(type) {
	case json.Number:
		if _, ok := new(big.Int).SetString(string(val), 10); ok {
			return true
		}
		f, ok := new(big.Float).SetString(string(val))
		if !ok {
			return false
		}
		_, acc := f.Int(nil)
		return acc == big.Exact
	case float32:
		return float64(val) == float64(int64(val))
	case float64:
		return val == float64(int64(val))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
