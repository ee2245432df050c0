package jsonschema

import "context"

// validateSharedKeywords implements the keyword group that applies
// regardless of instance kind: enum and const. Grounded on enum.go and
// const.go; type-checking itself is handled by the dispatcher (§4.6),
// not here, since "type" is a dispatch-routing keyword rather than a
// per-instance-kind constraint.
func validateSharedKeywords(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result {
	result := Valid()

	if schema.Const != nil && schema.Const.IsSet {
		if !deepEqualJSON(instance, schema.Const.Value) {
			result.AddError(scope.InstancePath, "const", nil, instance)
		}
	}

	if len(schema.Enum) > 0 {
		matched := false
		for _, candidate := range schema.Enum {
			if deepEqualJSON(instance, candidate) {
				matched = true
				break
			}
		}
		if !matched {
			result.AddError(scope.InstancePath, "enum", nil, instance)
		}
	}

	return result
}
