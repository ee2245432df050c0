// Package jsonschema implements the resolution and validation core of a
// JSON Schema engine: a reference resolver that tracks resolution scope
// across id and $ref boundaries, and a dispatcher that walks a schema tree
// and an instance tree in lockstep.
//
// The keyword library shipped in this package (object, array, numeric,
// string, combinator and shared keywords) is the default implementation of
// the external KeywordValidator contract; callers may register their own
// validators per Kind through a Validator's Registry.
package jsonschema
