package jsonschema

import (
	"context"
	"strings"
	"unicode/utf8"
)

// validateStringKeywords implements the String-kind group: minLength,
// maxLength, pattern, plus contentEncoding/contentMediaType/contentSchema
// (content.go) and format (format.go), both of which only ever apply to
// string instances. Grounded on minlength.go/maxlength.go/pattern.go.
func validateStringKeywords(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result {
	s, ok := instance.(string)
	if !ok {
		return Valid()
	}
	result := Valid()
	length := utf8.RuneCountInString(s)

	if schema.MinLength != nil && length < *schema.MinLength {
		result.AddError(scope.InstancePath, "minLength",
			map[string]interface{}{"limit": *schema.MinLength}, instance)
	}
	if schema.MaxLength != nil && length > *schema.MaxLength {
		result.AddError(scope.InstancePath, "maxLength",
			map[string]interface{}{"limit": *schema.MaxLength}, instance)
	}
	if schema.Pattern != "" {
		re := schema.compiledPattern
		if re == nil || !re.MatchString(s) {
			escaped := strings.ReplaceAll(schema.Pattern, `\`, `\\`)
			result.AddError(scope.InstancePath, "pattern",
				map[string]interface{}{"pattern": escaped}, instance)
		}
	}

	result.Merge(evaluateFormat(v, schema, s, scope))
	result.Merge(evaluateContent(ctx, v, schema, s, scope))

	return result
}
