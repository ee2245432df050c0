package jsonschema

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/idna"
)

// isAbsoluteURI reports whether urlStr parses with both a scheme and a
// host, matching the teacher's isAbsoluteURI.
func isAbsoluteURI(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// getURLScheme extracts the scheme of a URL permissively: whatever
// net/url itself recovers, with no stricter RFC-3986 validation. This
// is the permissive form the design notes call for over a strict check.
func getURLScheme(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Scheme
}

// baseURIFromID derives a base URI from an active id, per §4.1: when the
// id carries a host, the base is scheme://host[:port]; otherwise (e.g. a
// file: URL) the base is the directory portion of the path.
//
// Hosts are punycode-normalized through idna so that internationalized
// domain names compose into a canonical ASCII base URI before being used
// to resolve further $refs.
func baseURIFromID(id string) string {
	if id == "" {
		return ""
	}
	u, err := url.Parse(id)
	if err != nil {
		return ""
	}
	if u.Host != "" {
		host := u.Host
		if ascii, err := idna.Lookup.ToASCII(hostOnly(host)); err == nil {
			host = replaceHost(u.Host, ascii)
		}
		out := *u
		out.Host = host
		out.Path = ""
		out.RawQuery = ""
		out.Fragment = ""
		return out.Scheme + "://" + out.Host
	}
	// No host: derive the directory portion of the path component.
	dir := path.Dir(u.Path)
	if dir == "." {
		dir = "/"
	}
	if dir != "/" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	out := *u
	out.Path = dir
	return out.String()
}

// hostOnly strips an optional ":port" suffix from a URL host component.
func hostOnly(host string) string {
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}

// replaceHost substitutes the ASCII hostname back into a host[:port] pair.
func replaceHost(original, asciiHost string) string {
	if i := strings.LastIndex(original, ":"); i != -1 {
		return asciiHost + original[i:]
	}
	return asciiHost
}

// resolveRelativeURI resolves relativeURL against baseURI using standard
// URI composition rules, returning relativeURL unchanged if either side
// fails to parse as expected.
func resolveRelativeURI(baseURI, relativeURL string) string {
	if isAbsoluteURI(relativeURL) {
		return relativeURL
	}
	base, err := url.Parse(baseURI)
	if err != nil || base.Scheme == "" {
		return relativeURL
	}
	rel, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}
	return base.ResolveReference(rel).String()
}

// normalizeRef implements §4.1's URI normalizer: compose a reference
// string p against the current scope into an absolute URI.
func normalizeRef(p string, s Scope) string {
	switch {
	case strings.HasPrefix(p, "#"):
		if s.ID == "" {
			return p
		}
		base, _ := splitRef(s.ID)
		return base + p
	case isAbsoluteURI(p):
		if !strings.Contains(p, "#") && !strings.HasSuffix(p, "/") {
			return p + "#"
		}
		return p
	default:
		base := s.ID
		if base == "" {
			return p
		}
		if s.IsRoot {
			// §4.1 rule 3: a relative ref composed against the root
			// scope's own id uses a host-only (or directory-stripped)
			// base, not the id's full path — a nested id instead
			// composes with the full RFC3986 merge below.
			base = baseURIFromID(s.ID)
		}
		resolved := resolveRelativeURI(base, p)
		if !strings.Contains(resolved, "#") && !strings.HasSuffix(resolved, "/") {
			resolved += "#"
		}
		return resolved
	}
}
