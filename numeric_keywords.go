package jsonschema

import (
	"context"
	"math/big"
)

// validateNumericKeywords implements the Number/Integer-kind group:
// minimum/maximum, exclusiveMinimum/exclusiveMaximum, multipleOf, plus
// the Integer kind's extra integral-value requirement. Grounded on
// minimum.go/maximum.go/exclusiveMinimum.go/exclusiveMaximum.go/
// multipleOf.go, compared via rat.go's arbitrary-precision Rat.
func validateNumericKeywords(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result {
	n, ok := ratFromInstance(instance)
	if !ok {
		return Valid()
	}
	result := Valid()

	if schema.Kind == KindInteger && !isIntegral(instance) {
		result.AddError(scope.InstancePath, "integer", nil, instance)
	}

	if schema.Minimum != nil && n.Cmp(schema.Minimum.Rat) < 0 {
		result.AddError(scope.InstancePath, "minimum",
			map[string]interface{}{"limit": FormatRat(schema.Minimum)}, instance)
	}
	if schema.Maximum != nil && n.Cmp(schema.Maximum.Rat) > 0 {
		result.AddError(scope.InstancePath, "maximum",
			map[string]interface{}{"limit": FormatRat(schema.Maximum)}, instance)
	}
	if schema.ExclusiveMinimum != nil && n.Cmp(schema.ExclusiveMinimum.Rat) <= 0 {
		result.AddError(scope.InstancePath, "exclusiveMinimum",
			map[string]interface{}{"limit": FormatRat(schema.ExclusiveMinimum)}, instance)
	}
	if schema.ExclusiveMaximum != nil && n.Cmp(schema.ExclusiveMaximum.Rat) >= 0 {
		result.AddError(scope.InstancePath, "exclusiveMaximum",
			map[string]interface{}{"limit": FormatRat(schema.ExclusiveMaximum)}, instance)
	}
	if schema.MultipleOf != nil && !isMultipleOf(n, schema.MultipleOf) {
		result.AddError(scope.InstancePath, "multipleOf",
			map[string]interface{}{"divisor": FormatRat(schema.MultipleOf)}, instance)
	}

	return result
}

// isMultipleOf reports whether n / divisor is an integer, computed exactly
// over big.Rat to avoid float rounding artifacts near the boundary.
func isMultipleOf(n, divisor *Rat) bool {
	if divisor.Sign() == 0 {
		return false
	}
	quotient := new(big.Rat).Quo(n.Rat, divisor.Rat)
	return quotient.IsInt()
}
