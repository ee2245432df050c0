package jsonschema

import (
	"context"
	"strconv"
)

// validateArrayKeywords implements the Array-kind group: items (a single
// schema applied to every element), minItems/maxItems, uniqueItems,
// contains. Grounded on items.go, minItems.go/maxItems.go, uniqueItems.go,
// contains.go.
func validateArrayKeywords(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result {
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

	if schema.Items != nil {
		for i, elem := range arr {
			idx := strconv.Itoa(i)
			result.Merge(v.process(ctx, schema.Items, elem, scope.WithPaths("items", idx)))
		}
	}

	if schema.Contains != nil {
		found := false
		for _, elem := range arr {
			if v.process(ctx, schema.Contains, elem, scope.WithSchemaPath("contains")).IsValid() {
				found = true
				break
			}
		}
		if !found {
			result.AddError(scope.InstancePath, "contains", nil, instance)
		}
	}

	return result
}

// itemsAreUnique does a pairwise deep-equality scan; arrays in schema
// validation are small enough that O(n^2) is the right trade-off over
// hashing arbitrary JSON values, matching uniqueItems.go's approach.
func itemsAreUnique(arr []interface{}) bool {
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if deepEqualJSON(arr[i], arr[j]) {
				return false
			}
		}
	}
	return true
}

// deepEqualJSON compares two decoded JSON values for equality the way
// the JSON Schema spec defines it: numbers compare by value, not by
// representation; objects compare key-for-key ignoring order.
func deepEqualJSON(a, b interface{}) bool {
	switch av := a.(type) {
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !deepEqualJSON(v, bvv) {
				return false
			}
		}
		return true
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqualJSON(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		ar, aok := ratFromInstance(a)
		br, bok := ratFromInstance(b)
		if aok && bok {
			return ar.Cmp(br.Rat) == 0
		}
		return a == b
	}
}
