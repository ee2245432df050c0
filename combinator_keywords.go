package jsonschema

import (
	"context"
	"strconv"
)

// validateCompoundKeywords implements the Compound-kind group: anyOf,
// allOf, oneOf, not. A failing decision is made only after every branch
// has been evaluated and its errors collected, per §5's ordering guarantee
// that a compound combinator gathers all child errors before deciding;
// anyOf stops at its first matching branch, since one match decides success.
// Grounded on anyOf.go/allOf.go/oneOf.go/not.go.
func validateCompoundKeywords(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result {
	switch schema.Combinator {
	case CombinatorAllOf:
		result := Valid()
		for i, branch := range schema.Branches {
			result.Merge(v.process(ctx, branch, instance, scope.WithSchemaPath("allOf/"+strconv.Itoa(i))))
		}
		return result

	case CombinatorAnyOf:
		var collected []*ValidationError
		for i, branch := range schema.Branches {
			sub := v.process(ctx, branch, instance, scope.WithSchemaPath("anyOf/"+strconv.Itoa(i)))
			if sub.IsValid() {
				return Valid()
			}
			collected = append(collected, sub.Errors...)
		}
		result := InvalidKeyword(scope.InstancePath, "anyOf", nil, instance)
		result.Errors = append(result.Errors, collected...)
		return result

	case CombinatorOneOf:
		var matches int
		var collected []*ValidationError
		for i, branch := range schema.Branches {
			sub := v.process(ctx, branch, instance, scope.WithSchemaPath("oneOf/"+strconv.Itoa(i)))
			if sub.IsValid() {
				matches++
			} else {
				collected = append(collected, sub.Errors...)
			}
		}
		if matches == 1 {
			return Valid()
		}
		result := InvalidKeyword(scope.InstancePath, "oneOf", map[string]interface{}{"matched": matches}, instance)
		if matches == 0 {
			result.Errors = append(result.Errors, collected...)
		}
		return result

	case CombinatorNot:
		sub := v.process(ctx, schema.NotSchema, instance, scope.WithSchemaPath("not"))
		if sub.IsValid() {
			return InvalidKeyword(scope.InstancePath, "not", nil, instance)
		}
		return Valid()
	}
	return Valid()
}
