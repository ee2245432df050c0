package jsonschema

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// FormatFunc validates a string instance against a named format.
type FormatFunc func(value string) bool

// Formats is the global, package-level format registry, grounded on
// formats.go's package-level map. A Validator may additionally carry its
// own override table (set through RegisterFormat) consulted first, the
// same two-tier lookup as the teacher's evaluateFormat.
var Formats = map[string]FormatFunc{
	"email":        formatEmail,
	"hostname":     formatHostname,
	"ipv4":         formatIPv4,
	"ipv6":         formatIPv6,
	"uri":          formatURI,
	"uuid":         formatUUID,
	"date-time":    formatDateTime,
	"date":         formatDate,
	"regex":        formatRegex,
	"json-pointer": isJSONPointer,
}

var (
	ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	hostPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
)

func formatEmail(v string) bool {
	_, err := mail.ParseAddress(v)
	return err == nil
}

func formatHostname(v string) bool {
	return hostPattern.MatchString(v)
}

func formatIPv4(v string) bool {
	return ipv4Pattern.MatchString(v)
}

func formatIPv6(v string) bool {
	return strings.Contains(v, ":") && !strings.Contains(v, " ")
}

func formatURI(v string) bool {
	u, err := url.Parse(v)
	return err == nil && u.Scheme != ""
}

func formatUUID(v string) bool {
	return uuidPattern.MatchString(v)
}

func formatDateTime(v string) bool {
	_, err := time.Parse(time.RFC3339, v)
	return err == nil
}

func formatDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

func formatRegex(v string) bool {
	_, err := regexp.Compile(v)
	return err == nil
}

// evaluateFormat implements the format keyword: a per-Validator override
// wins over the global Formats table; AssertFormat toggles whether a
// miss produces an error (assert) or is annotate-only (the JSON Schema
// default, under which format mismatches are silently ignored since this
// package's Result carries no annotation channel), grounded on
// format.go's evaluateFormat/matchesType split.
func evaluateFormat(v *Validator, schema *Schema, s string, scope Scope) *Result {
	if schema.Format == "" {
		return Valid()
	}
	fn, ok := v.customFormats[schema.Format]
	if !ok {
		fn, ok = Formats[schema.Format]
	}
	if !ok || fn(s) {
		return Valid()
	}
	if !v.AssertFormat {
		return Valid()
	}
	return InvalidKeyword(scope.InstancePath, "format", map[string]interface{}{"format": schema.Format}, s)
}
