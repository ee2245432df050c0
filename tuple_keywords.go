package jsonschema

import (
	"context"
	"strconv"
)

// validateTupleKeywords implements the Tuple-kind group: a fixed list of
// positional item schemas plus an optional schema (or boolean schema) for
// items beyond the declared positions. Grounded on prefixItems.go,
// repurposed from 2020-12's separate prefixItems/items pair into this
// spec's Draft-4-style "items as an array of schemas" Tuple kind.
func validateTupleKeywords(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result {
	arr, ok := instance.([]interface{})
	if !ok {
		return Valid()
	}
	result := Valid()

	if schema.MinItems != nil && len(arr) < *schema.MinItems {
		result.AddError(scope.InstancePath, "minItems",
			map[string]interface{}{"limit": *schema.MinItems}, instance)
	}
	if schema.MaxItems != nil && len(arr) > *schema.MaxItems {
		result.AddError(scope.InstancePath, "maxItems",
			map[string]interface{}{"limit": *schema.MaxItems}, instance)
	}
	if schema.UniqueItems && !itemsAreUnique(arr) {
		result.AddError(scope.InstancePath, "uniqueItems", nil, instance)
	}

	for i, elem := range arr {
		idx := strconv.Itoa(i)
		switch {
		case i < len(schema.TupleItems):
			result.Merge(v.process(ctx, schema.TupleItems[i], elem, scope.WithPaths("items/"+idx, idx)))
		case schema.AdditionalItems != nil:
			if schema.AdditionalItems.IsBooleanSchema() && !*schema.AdditionalItems.Bool {
				result.AddError(scope.InstancePath.Append(idx), "additionalItems",
					map[string]interface{}{"index": idx}, elem)
				continue
			}
			result.Merge(v.process(ctx, schema.AdditionalItems, elem, scope.WithPaths("additionalItems", idx)))
		}
	}

	return result
}
