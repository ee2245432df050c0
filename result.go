package jsonschema

import "strings"

// ValidationError is one keyword violation or resolution failure found
// during a Validate call. Grounded on result.go's EvaluationError, with
// an added Value field carrying the offending instance sub-value, per
// §6's (path, message, offending_value) error-output contract.
type ValidationError struct {
	// Path is the instance path at which the failure occurred.
	Path Path
	// Keyword is the schema keyword responsible (e.g. "minimum",
	// "required", "type"), empty for resolution failures and other raw
	// diagnostics that carry no locale message key. Doubles as the lookup
	// key into a Localizer's message bundle.
	Keyword string
	// Message is Keyword rendered in the default (English) locale at
	// construction time. Result.Localize re-renders it from Params in a
	// different locale; errors with no Keyword keep their raw Message.
	Message string
	// Value is the offending instance sub-value.
	Value interface{}
	// Params carries the named substitution values Message (and any
	// re-localized rendering of it) was built from, e.g. {"limit": 5}
	// for a "minimum" error. Nil for keyword-less errors.
	Params map[string]interface{}
}

func (e *ValidationError) Error() string {
	return e.Path.String() + ": " + e.Message
}

// Result is the aggregate outcome of one dispatcher call (§4.6/§7):
// either valid with no errors, or invalid carrying every error found in
// this branch. Trimmed from result.go's EvaluationResult/List/Flag
// hierarchy: this spec's data model has no 2020-12 annotation or
// unevaluated-keyword bookkeeping to carry alongside errors.
type Result struct {
	Errors []*ValidationError
}

// Valid returns an empty, successful Result.
func Valid() *Result {
	return &Result{}
}

// Invalid returns a Result carrying a single keyword-less error: used for
// resolution failures and similar diagnostics that have no corresponding
// entry in the locale message bundles and so are never re-localized.
func Invalid(path Path, message string, value interface{}) *Result {
	return &Result{Errors: []*ValidationError{{Path: path, Message: message, Value: value}}}
}

// InvalidKeyword returns a Result carrying a single localized error for
// keyword, rendered from params in the default (English) locale. params
// is retained on the error so Result.Localize can re-render Message in a
// caller-chosen locale later.
func InvalidKeyword(path Path, keyword string, params map[string]interface{}, value interface{}) *Result {
	return &Result{Errors: []*ValidationError{newKeywordError(path, keyword, params, value)}}
}

// IsValid reports whether r carries no errors.
func (r *Result) IsValid() bool {
	return r == nil || len(r.Errors) == 0
}

// Merge appends other's errors onto r and returns r, so keyword
// validators can fold several sub-results together before returning.
func (r *Result) Merge(other *Result) *Result {
	if other == nil {
		return r
	}
	r.Errors = append(r.Errors, other.Errors...)
	return r
}

// AddError appends a single localized keyword error, rendered from params
// in the default (English) locale.
func (r *Result) AddError(path Path, keyword string, params map[string]interface{}, value interface{}) *Result {
	r.Errors = append(r.Errors, newKeywordError(path, keyword, params, value))
	return r
}

// AddRaw appends a single keyword-less error with a pre-formatted
// message, for diagnostics (e.g. a decode failure) with no locale key.
func (r *Result) AddRaw(path Path, message string, value interface{}) *Result {
	r.Errors = append(r.Errors, &ValidationError{Path: path, Message: message, Value: value})
	return r
}

func newKeywordError(path Path, keyword string, params map[string]interface{}, value interface{}) *ValidationError {
	return &ValidationError{
		Path:    path,
		Keyword: keyword,
		Message: defaultLocalizer.Localize(keyword, params),
		Value:   value,
		Params:  params,
	}
}

// Localize re-renders every keyword-bearing error's Message in l's
// locale, from the same Params each was originally built with. Errors
// with no Keyword (resolution failures, always-false schemas, decode
// errors) are left with their original raw Message.
func (r *Result) Localize(l *Localizer) *Result {
	if r == nil || l == nil {
		return r
	}
	for _, e := range r.Errors {
		if e.Keyword == "" {
			continue
		}
		e.Message = l.Localize(e.Keyword, e.Params)
	}
	return r
}

// Summary renders every error as one newline-joined string, for callers
// that just want a readable failure dump.
func (r *Result) Summary() string {
	if r.IsValid() {
		return "valid"
	}
	lines := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
