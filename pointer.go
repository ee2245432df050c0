package jsonschema

import (
	"net/url"
	"strings"
)

// Path is an ordered sequence of segments locating a node within a schema
// tree or an instance tree. A segment is either a property name or the
// decimal string form of an array index.
type Path []string

// String renders a path the way error messages in this package do:
// slash-joined, rooted at "#" when empty, matching the teacher's
// GetSchemaLocation convention.
func (p Path) String() string {
	if len(p) == 0 {
		return "#"
	}
	return "#/" + strings.Join(p, "/")
}

// Append returns a new path with seg appended, leaving p untouched. Scope
// is threaded by value, so every extension goes through this copying path
// rather than mutating a shared slice.
func (p Path) Append(seg string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// unescapeToken reverses JSON-Pointer escaping (RFC 6901): ~1 decodes to
// '/', ~0 decodes to '~'. Order matters: ~1 must be decoded before ~0 would
// otherwise be reapplied to a literal "~1" produced by a prior pass.
func unescapeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}

// tokenizeFragment splits the fragment portion of a URI (the text after
// the first '#') into JSON-Pointer segments, unescaping and percent-
// decoding each one. A bare "#" or empty fragment yields no segments.
func tokenizeFragment(fragment string) []string {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return nil
	}
	fragment = strings.TrimPrefix(fragment, "/")
	if fragment == "" {
		return []string{}
	}
	raw := strings.Split(fragment, "/")
	segments := make([]string, len(raw))
	for i, r := range raw {
		r = unescapeToken(r)
		if decoded, err := url.PathUnescape(r); err == nil {
			r = decoded
		}
		segments[i] = r
	}
	return segments
}

// isJSONPointer reports whether s looks like a JSON Pointer (leading "/")
// rather than a URI or a bare fragment name.
func isJSONPointer(s string) bool {
	return strings.HasPrefix(s, "/")
}

// splitRef separates a reference string into its base-URI part and its
// fragment part (without the leading '#').
func splitRef(ref string) (base, fragment string) {
	parts := strings.SplitN(ref, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return ref, ""
}
