package jsonschema

import (
	"context"
	"sort"
)

// validateObjectKeywords implements the object-keyword group: properties,
// patternProperties, additionalProperties, required, dependencies,
// minProperties/maxProperties, propertyNames. It no-ops when instance is
// not a map, which is what lets an untyped, Object-shaped schema validate
// any instance kind while only constraining object instances (§4.6).
//
// Grounded on properties.go, patternProperties.go, additionalProperties.go,
// required.go, dependentRequired.go+dependentSchemas.go (merged into the
// unified Draft-4 "dependencies" keyword), minProperties.go/maxProperties.go,
// propertyNames.go.
func validateObjectKeywords(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result {
	obj, ok := instance.(map[string]interface{})
	if !ok {
		return Valid()
	}
	result := Valid()

	// required: one error per missing property (spec scenario 2),
	// deviating from required.go's single aggregated message.
	for _, name := range schema.Required {
		if _, present := obj[name]; !present {
			result.AddError(scope.InstancePath, "required",
				map[string]interface{}{"property": name}, instance)
		}
	}

	if schema.MinProperties != nil && len(obj) < *schema.MinProperties {
		result.AddError(scope.InstancePath, "minProperties",
			map[string]interface{}{"limit": *schema.MinProperties}, instance)
	}
	if schema.MaxProperties != nil && len(obj) > *schema.MaxProperties {
		result.AddError(scope.InstancePath, "maxProperties",
			map[string]interface{}{"limit": *schema.MaxProperties}, instance)
	}

	// dependencies: a unified keyword whose value per-property is either
	// a list of co-required property names or a sub-schema, per
	// dependentRequired.go and dependentSchemas.go merged into one.
	for _, name := range sortedKeys(schema.Dependencies) {
		dep := schema.Dependencies[name]
		if _, present := obj[name]; !present {
			continue
		}
		if dep.Schema != nil {
			result.Merge(v.process(ctx, dep.Schema, instance, scope.WithSchemaPath("dependencies")))
			continue
		}
		for _, required := range dep.RequiredProps {
			if _, present := obj[required]; !present {
				result.AddError(scope.InstancePath, "dependencies",
					map[string]interface{}{"property": name, "dependency": required}, instance)
			}
		}
	}

	if schema.PropertyNames != nil {
		for _, name := range sortedKeys(obj) {
			sub := v.process(ctx, schema.PropertyNames, name, scope.WithSchemaPath("propertyNames"))
			if !sub.IsValid() {
				result.AddError(scope.InstancePath.Append(name), "propertyNames",
					map[string]interface{}{"property": name}, name)
			}
		}
	}

	matched := make(map[string]bool, len(obj))

	if schema.Properties != nil {
		for _, name := range sortedKeys(schema.Properties) {
			propSchema := schema.Properties[name]
			value, present := obj[name]
			if !present {
				continue
			}
			matched[name] = true
			result.Merge(v.process(ctx, propSchema,
				value, scope.WithPaths("properties/"+name, name)))
		}
	}

	if schema.PatternProperties != nil {
		for _, pattern := range sortedKeys(schema.PatternProperties) {
			propSchema := schema.PatternProperties[pattern]
			re := schema.compiledPatternProps[pattern]
			if re == nil {
				continue
			}
			for _, name := range sortedKeys(obj) {
				if !re.MatchString(name) {
					continue
				}
				matched[name] = true
				result.Merge(v.process(ctx, propSchema,
					obj[name], scope.WithPaths("patternProperties/"+pattern, name)))
			}
		}
	}

	if schema.AdditionalProperties != nil {
		for _, name := range sortedKeys(obj) {
			if matched[name] {
				continue
			}
			if schema.AdditionalProperties.IsBooleanSchema() && !*schema.AdditionalProperties.Bool {
				result.AddError(scope.InstancePath.Append(name), "additionalProperties",
					map[string]interface{}{"property": name}, obj[name])
				continue
			}
			result.Merge(v.process(ctx, schema.AdditionalProperties,
				obj[name], scope.WithPaths("additionalProperties", name)))
		}
	}

	return result
}

// sortedKeys returns the keys of a string-keyed map in deterministic
// (lexicographic) order, so that the order in which errors are appended
// for map iteration (dependencies, propertyNames, properties,
// patternProperties, additionalProperties) is stable across runs — needed
// for the determinism invariant in §8.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
