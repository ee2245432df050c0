package jsonschema

import (
	"math/big"

	"github.com/goccy/go-json"
)

// Rat wraps math/big.Rat so numeric keywords compare JSON numbers with
// arbitrary precision instead of losing accuracy through float64, kept
// close to the teacher's rat.go (the technique is domain-general, not
// coupled to the teacher's 2020-12 struct).
type Rat struct {
	*big.Rat
}

// NewRat builds a Rat from a float64, matching the teacher's constructor.
func NewRat(f float64) *Rat {
	return &Rat{new(big.Rat).SetFloat64(f)}
}

// ratFromInstance converts a decoded JSON numeric instance value into a
// Rat for comparison against a schema's numeric keyword bounds.
func ratFromInstance(v interface{}) (*Rat, bool) {
	switch val := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(string(val))
		if !ok {
			return nil, false
		}
		return &Rat{r}, true
	case float64:
		return &Rat{new(big.Rat).SetFloat64(val)}, true
	case float32:
		return &Rat{new(big.Rat).SetFloat64(float64(val))}, true
	case int:
		return &Rat{new(big.Rat).SetInt64(int64(val))}, true
	case int64:
		return &Rat{new(big.Rat).SetInt64(val)}, true
	default:
		return nil, false
	}
}

// UnmarshalJSON decodes a Rat from any JSON numeric literal, preserving
// full precision by round-tripping through the literal's decimal text.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	parsed, ok := new(big.Rat).SetString(string(num))
	if !ok {
		return ErrInvalidSchemaJSON
	}
	r.Rat = parsed
	return nil
}

// MarshalJSON renders a Rat back to its shortest decimal form.
func (r *Rat) MarshalJSON() ([]byte, error) {
	if r == nil || r.Rat == nil {
		return []byte("null"), nil
	}
	f, _ := r.Rat.Float64()
	return json.Marshal(f)
}

// FormatRat renders r as a decimal string for error messages.
func FormatRat(r *Rat) string {
	if r == nil || r.Rat == nil {
		return ""
	}
	if r.IsInt() {
		return r.RatString()
	}
	f, _ := r.Float64()
	return big.NewFloat(f).Text('f', -1)
}
