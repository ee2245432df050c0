package jsonschema

import (
	"context"

	"github.com/goccy/go-json"
)

// ValidateJSON is §4.7 entry shape 1: raw JSON schema and instance in,
// a Result out.
func ValidateJSON(ctx context.Context, v *Validator, schemaJSON, instanceJSON []byte) (*Result, error) {
	return v.Validate(ctx, schemaJSON, instanceJSON)
}

// ValidateJSONInto is §4.7 entry shape 2: raw JSON in, decoded into out
// (a pointer to a typed Go value) once validation succeeds.
func ValidateJSONInto(ctx context.Context, v *Validator, schemaJSON, instanceJSON []byte, out interface{}) (*Result, error) {
	result, err := v.Validate(ctx, schemaJSON, instanceJSON)
	if err != nil {
		return nil, err
	}
	if !result.IsValid() {
		return result, nil
	}
	if err := json.Unmarshal(instanceJSON, out); err != nil {
		result.AddRaw(nil, "decode error: "+err.Error(), nil)
		return result, nil
	}
	return result, nil
}

// ValidateValue is §4.7 entry shape 3: a typed Go value, encoded to JSON
// first, validated against schemaJSON.
func ValidateValue(ctx context.Context, v *Validator, schemaJSON []byte, value interface{}) (*Result, error) {
	instanceJSON, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return v.Validate(ctx, schemaJSON, instanceJSON)
}

// ValidateValueRoundTrip is §4.7 entry shape 4: encode value to JSON,
// validate, and on success decode the same JSON back into a value of the
// same type, so a caller's struct round-trips
// through validation unchanged when it already satisfies the schema.
func ValidateValueRoundTrip(ctx context.Context, v *Validator, schemaJSON []byte, value interface{}, out interface{}) (*Result, error) {
	instanceJSON, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return ValidateJSONInto(ctx, v, schemaJSON, instanceJSON, out)
}
