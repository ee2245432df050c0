package jsonschema

import "regexp"

// Kind tags a Schema node with the instance shape it governs. The
// dispatcher in dispatch.go switches on Kind (and on whether a type was
// actually declared) rather than on which struct fields happen to be
// set — this is the tagged-variant redesign called for over the
// teacher's one-struct-every-keyword representation.
type Kind int

const (
	// KindAny is an "open" schema: no type keyword was declared. It
	// matches any instance kind, enforcing only whatever keywords it
	// does carry (see the first row of §4.6's dispatch table).
	KindAny Kind = iota
	KindObject
	KindArray
	KindTuple
	KindNumber
	KindInteger
	KindString
	KindBoolean
	KindNull
	KindCompound
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindCompound:
		return "compound"
	case KindRef:
		return "ref"
	default:
		return "any"
	}
}

// Combinator names the way a Compound schema's branches combine.
type Combinator int

const (
	CombinatorAnyOf Combinator = iota
	CombinatorAllOf
	CombinatorOneOf
	CombinatorNot
)

// Dependency is one value of the unified "dependencies" keyword: either a
// list of property names that must co-occur with the owning property, or
// a sub-schema the whole instance must satisfy when the owning property
// is present. Exactly one of RequiredProps or Schema is set.
type Dependency struct {
	RequiredProps []string
	Schema        *Schema
}

// ConstValue distinguishes "const not declared" from "const declared as
// JSON null", mirroring the teacher's ConstValue.
type ConstValue struct {
	Value interface{}
	IsSet bool
}

// Schema is the tagged schema node. A node is either a pure boolean
// schema (Bool non-nil, every other field ignored) or a keyword-bearing
// node classified by Kind.
type Schema struct {
	Bool *bool

	Kind    Kind
	HasType bool

	// ID is this node's own declared scope-refining id, if any (not the
	// effective scope id, which lives on Scope and accumulates parents).
	ID string

	// Ref holds the raw (unnormalized) $ref string when Kind == KindRef.
	Ref string

	// Compound (anyOf/allOf/oneOf/not).
	Combinator Combinator
	Branches   []*Schema // anyOf/allOf/oneOf
	NotSchema  *Schema   // not

	// Object keywords.
	Properties           map[string]*Schema
	PatternProperties    map[string]*Schema
	compiledPatternProps map[string]*regexp.Regexp
	AdditionalProperties *Schema // nil == unconstrained; Bool schema for true/false
	Required             []string
	Dependencies          map[string]Dependency
	MinProperties         *int
	MaxProperties         *int
	PropertyNames         *Schema

	// Array / Tuple keywords.
	Items           *Schema   // Kind == KindArray
	TupleItems      []*Schema // Kind == KindTuple
	AdditionalItems *Schema   // Tuple: schema (or bool schema) for items beyond TupleItems
	MinItems        *int
	MaxItems        *int
	UniqueItems     bool
	Contains        *Schema

	// Numeric keywords.
	Minimum          *Rat
	Maximum          *Rat
	ExclusiveMinimum *Rat
	ExclusiveMaximum *Rat
	MultipleOf       *Rat

	// String keywords.
	MinLength       *int
	MaxLength       *int
	Pattern         string
	compiledPattern *regexp.Regexp

	// Shared keywords.
	Enum  []interface{}
	Const *ConstValue

	// Format / content.
	Format           string
	ContentEncoding  string
	ContentMediaType string
	ContentSchema    *Schema

	// Definitions holds the conventional Draft-4 "definitions" map: named
	// sub-schemas with no direct effect on validation of the enclosing
	// node, reachable only via "#/definitions/NAME" references.
	Definitions map[string]*Schema

	// Constraints retains every keyword not modeled above verbatim, so
	// custom KeywordValidators (and future keywords) can read them
	// without the parser needing to know about them in advance.
	Constraints map[string]interface{}
}

// IsBooleanSchema reports whether s is the degenerate boolean-schema form
// (bare JSON true or false in place of an object).
func (s *Schema) IsBooleanSchema() bool {
	return s != nil && s.Bool != nil
}
