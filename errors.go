package jsonschema

import "errors"

// === Parsing errors ===

var (
	ErrInvalidSchemaJSON = errors.New("jsonschema: schema document is not valid JSON")
	ErrBooleanSchemaOnly = errors.New("jsonschema: boolean schema accepts no keywords")
	ErrUnknownKind       = errors.New("jsonschema: could not classify schema node kind")
)

// === Resolution errors ===

var (
	ErrRefNotFound       = errors.New("jsonschema: reference target not found")
	ErrRefCycle          = errors.New("jsonschema: reference cycle detected")
	ErrInvalidRefSyntax  = errors.New("jsonschema: malformed $ref string")
	ErrFragmentNotFound  = errors.New("jsonschema: fragment does not resolve within document")
	ErrNoDocumentRoot    = errors.New("jsonschema: no document root in scope")
	ErrSchemeNotSupported = errors.New("jsonschema: no loader registered for URI scheme")
)

// === Fetch errors ===

var (
	ErrFetchFailed      = errors.New("jsonschema: failed to fetch remote schema")
	ErrInvalidStatus    = errors.New("jsonschema: unexpected HTTP status fetching remote schema")
	ErrFetchedNotParsed = errors.New("jsonschema: fetched document could not be parsed as a schema")
)

// === Format and content errors ===

var (
	ErrUnknownFormat      = errors.New("jsonschema: no validator registered for format")
	ErrUnknownEncoding    = errors.New("jsonschema: no decoder registered for contentEncoding")
	ErrUnknownMediaType   = errors.New("jsonschema: no decoder registered for contentMediaType")
)

// RefError wraps a resolution failure with the offending reference string
// and the schema path at which it was encountered, so callers can render a
// precise diagnostic without re-deriving context.
type RefError struct {
	Ref        string
	SchemaPath string
	Err        error
}

func (e *RefError) Error() string {
	return "jsonschema: resolving \"" + e.Ref + "\" at " + e.SchemaPath + ": " + e.Err.Error()
}

func (e *RefError) Unwrap() error { return e.Err }
