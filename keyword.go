package jsonschema

import "context"

// KeywordValidator is the external contract of §4.4: given a schema node,
// the instance value reaching that node, and the current scope, produce a
// Result. Implementations may recursively call Validator.process on child
// (schema, instance) pairs, extending scope as they descend.
//
// The dispatcher only ever invokes a KeywordValidator when it has already
// established the instance kind is compatible with the row being
// evaluated (§4.6); a validator does not need to re-check gross type
// compatibility, only the specific keywords it owns.
type KeywordValidator func(ctx context.Context, v *Validator, schema *Schema, instance interface{}, scope Scope) *Result

// Registry is a Kind-keyed table of KeywordValidators — keyword-validator
// sets become data, per the design notes, rather than virtual methods on
// a per-draft Schema type. A Validator's Registry starts out populated
// with this package's default keyword library (object_keywords.go,
// array_keywords.go, etc.) and callers may overwrite or add entries with
// Register.
type Registry struct {
	byKind map[Kind]KeywordValidator
}

// NewRegistry returns a Registry pre-populated with this package's
// built-in keyword-validator set, grounded on keywords.go's registration
// table.
func NewRegistry() *Registry {
	r := &Registry{byKind: make(map[Kind]KeywordValidator)}
	r.Register(KindObject, validateObjectKeywords)
	r.Register(KindArray, validateArrayKeywords)
	r.Register(KindTuple, validateTupleKeywords)
	r.Register(KindNumber, validateNumericKeywords)
	r.Register(KindInteger, validateNumericKeywords)
	r.Register(KindString, validateStringKeywords)
	r.Register(KindBoolean, validateSharedKeywords)
	r.Register(KindNull, validateSharedKeywords)
	r.Register(KindCompound, validateCompoundKeywords)
	r.Register(KindAny, validateSharedKeywords)
	return r
}

// Register installs validator as the handler for kind, replacing any
// existing one.
func (r *Registry) Register(kind Kind, validator KeywordValidator) {
	r.byKind[kind] = validator
}

// Lookup returns the validator registered for kind, if any.
func (r *Registry) Lookup(kind Kind) (KeywordValidator, bool) {
	kv, ok := r.byKind[kind]
	return kv, ok
}
