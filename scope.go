package jsonschema

// Scope is the resolution context threaded through validation and
// resolution. It is a value type: every method that "extends" a scope
// returns a new Scope rather than mutating the receiver, so a caller can
// resolve into a sub-document and return to the caller's scope unchanged.
//
// This replaces the teacher's mutable DynamicScope stack and the
// resolved-ref fields it used to cache directly on *Schema: here nothing
// is cached on the schema node itself, and "popping" a scope is simply
// discarding a value and continuing to hold the one captured before the
// call.
type Scope struct {
	// Root is the schema node treated as "#" for pointer resolution.
	Root *Schema
	// SchemaPath and InstancePath track where in each tree we currently
	// are, extended on the way down and left behind (not popped) on the
	// way back up because each recursive call holds its own Scope value.
	SchemaPath   Path
	InstancePath Path
	// ID is the active base URI, refined by the nearest enclosing
	// scope-bearing container's id keyword.
	ID string
	// IsRoot reports whether ID still names the root scope's own id,
	// unrefined by any nested id encountered while descending. §4.1 rule
	// 3 treats the root scope's id specially when composing a relative
	// $ref against it (see baseURIFromID); any nested id moves scope out
	// of the root and back onto plain RFC3986 composition.
	IsRoot bool
	// Visited accumulates reference strings entered on the current
	// resolution chain, for cycle detection. A fresh, empty set is
	// created at the top of every call to Validate.
	Visited map[string]bool
}

// NewScope builds the initial scope for a fresh top-level validation call,
// rooted at schema with empty paths and an empty visited set.
func NewScope(root *Schema) Scope {
	id := ""
	if root != nil {
		id = root.ID
	}
	return Scope{
		Root:    root,
		ID:      id,
		IsRoot:  true,
		Visited: make(map[string]bool),
	}
}

// WithPaths returns a copy of s with both paths extended by seg.
func (s Scope) WithPaths(schemaSeg, instanceSeg string) Scope {
	next := s
	next.SchemaPath = s.SchemaPath.Append(schemaSeg)
	next.InstancePath = s.InstancePath.Append(instanceSeg)
	return next
}

// WithSchemaPath returns a copy of s with only the schema path extended,
// used while descending through schema-only structure (e.g. into a
// combinator branch) that has no corresponding instance segment yet.
func (s Scope) WithSchemaPath(seg string) Scope {
	next := s
	next.SchemaPath = s.SchemaPath.Append(seg)
	return next
}

// WithID returns a copy of s whose active base URI is refined by a child
// id value, normalized against the current base. A nested id always
// leaves the root scope: §4.1 rule 3's root-only base derivation no
// longer applies once any id below the document root has refined ID.
func (s Scope) WithID(childID string) Scope {
	if childID == "" {
		return s
	}
	next := s
	next.ID = resolveRelativeURI(s.ID, childID)
	next.IsRoot = false
	return next
}

// WithRootID returns a copy of s whose active base URI is replaced by id
// (already absolute) and marked as a fresh root scope, used when a $ref
// hop switches document root entirely: the fetched document's own id
// becomes root-scoped base for any further relative refs composed
// against it, per §4.1 rule 3.
func (s Scope) WithRootID(id string) Scope {
	next := s
	next.ID = id
	next.IsRoot = true
	return next
}

// WithRoot returns a copy of s whose document root is replaced, used
// while a reference resolution is under way inside a fetched remote
// document. Because Scope is a value, the caller's own Scope (with the
// original Root) is untouched and remains valid to resume with after the
// sub-resolution returns — this is the "restore root after resolve"
// requirement.
func (s Scope) WithRoot(root *Schema) Scope {
	next := s
	next.Root = root
	return next
}

// Enter returns a copy of s with ref added to the visited set, and
// reports whether ref was already present (a cycle on the current
// chain). The returned scope should be used for the recursive call that
// follows; the caller's own (unmodified) Visited set is restored
// automatically once the call returns, again because Scope is a value.
func (s Scope) Enter(ref string) (next Scope, alreadyVisited bool) {
	alreadyVisited = s.Visited[ref]
	visited := make(map[string]bool, len(s.Visited)+1)
	for k, v := range s.Visited {
		visited[k] = v
	}
	visited[ref] = true
	next = s
	next.Visited = visited
	return next, alreadyVisited
}
