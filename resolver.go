package jsonschema

import (
	"context"
	"strconv"
)

// Resolve implements §4.5: given a $ref string and the scope in which it
// was encountered, return the resolved schema node and the scope that
// validation inside that node should proceed with. It follows chains of
// refs-to-refs (the "post-resolution follow-through" rule) and restores
// the caller's document root once a remote sub-resolution completes,
// because Scope is a value and the caller still holds its own copy.
func (v *Validator) Resolve(ctx context.Context, ref string, scope Scope) (*Schema, Scope, error) {
	node, nextScope, err := v.resolveOnce(ctx, ref, scope)
	if err != nil {
		return nil, scope, err
	}
	return v.followRefChain(ctx, node, nextScope)
}

// followRefChain repeatedly resolves while the current node is itself an
// unresolved $ref, grounded on ref.go's ResolveUnresolvedReferences but
// reworked into a pull-based loop over an immutable scope instead of a
// mutation pass over the whole tree.
func (v *Validator) followRefChain(ctx context.Context, node *Schema, scope Scope) (*Schema, Scope, error) {
	for node != nil && node.Kind == KindRef {
		absRef := normalizeRef(node.Ref, scope)
		entered, wasVisited := scope.Enter(absRef)
		if wasVisited {
			return nil, scope, &RefError{Ref: node.Ref, SchemaPath: scope.SchemaPath.String(), Err: ErrRefCycle}
		}
		next, nextScope, err := v.resolveOnce(ctx, node.Ref, entered)
		if err != nil {
			return nil, scope, err
		}
		node, scope = next, nextScope
	}
	return node, scope, nil
}

// resolveOnce resolves a single (possibly relative) reference string
// against scope, dispatching on whether it names a same-document
// fragment or a separate document that must be fetched and cached.
func (v *Validator) resolveOnce(ctx context.Context, ref string, scope Scope) (*Schema, Scope, error) {
	absRef := normalizeRef(ref, scope)
	base, fragment := splitRef(absRef)

	currentBase, _ := splitRef(scope.ID)

	if base == "" || base == currentBase {
		// Same document: either no base was composed at all, or the
		// composed base is exactly the id already anchoring scope.Root
		// (including a nested id, per §9/scenario 1) — resolve the
		// fragment in-memory rather than fetching.
		node, err := walkPointer(scope.Root, tokenizeFragment(fragment))
		if err != nil {
			return nil, scope, &RefError{Ref: ref, SchemaPath: scope.SchemaPath.String(), Err: err}
		}
		return node, scope, nil
	}

	resolvedBase := base
	if !isAbsoluteURI(resolvedBase) && v.DefaultBaseURI != "" {
		resolvedBase = resolveRelativeURI(v.DefaultBaseURI, resolvedBase)
	}
	if !isAbsoluteURI(resolvedBase) {
		return nil, scope, &RefError{Ref: ref, SchemaPath: scope.SchemaPath.String(), Err: ErrInvalidRefSyntax}
	}

	doc, err := v.fetchDocument(ctx, resolvedBase)
	if err != nil {
		return nil, scope, &RefError{Ref: ref, SchemaPath: scope.SchemaPath.String(), Err: err}
	}
	// Replace the document root for the duration of the sub-resolution
	// only; the caller's scope value (with the original Root) is
	// untouched and is what execution resumes with once Resolve returns.
	remoteScope := scope.WithRoot(doc).WithRootID(resolvedBase)
	node, err := walkPointer(doc, tokenizeFragment(fragment))
	if err != nil {
		return nil, scope, &RefError{Ref: ref, SchemaPath: scope.SchemaPath.String(), Err: err}
	}
	return node, remoteScope, nil
}

// fetchDocument returns the cached document for uri, fetching and parsing
// it through the scheme-handler registry on a cache miss.
func (v *Validator) fetchDocument(ctx context.Context, uri string) (*Schema, error) {
	if doc, ok := v.cache.get(uri); ok {
		return doc, nil
	}
	data, err := v.fetch(ctx, uri)
	if err != nil {
		return nil, err
	}
	doc, err := ParseSchema(data)
	if err != nil {
		return nil, ErrFetchedNotParsed
	}
	v.cache.put(uri, doc)
	return doc, nil
}

// walkPointer implements the per-kind JSON-Pointer fragment traversal of
// §4.5: each keyword segment is interpreted according to the keyword it
// names, consuming the following segment as a property name or index when
// the keyword holds a map or list of schemas, and nothing more when it
// holds a single schema. Grounded on
// ref.go's findSchemaInSegment, generalized to the tagged Schema type.
func walkPointer(node *Schema, segments []string) (*Schema, error) {
	if len(segments) == 0 {
		return node, nil
	}
	if node == nil {
		return nil, ErrFragmentNotFound
	}

	seg, rest := segments[0], segments[1:]

	byName := func(m map[string]*Schema) (*Schema, []string, bool) {
		if len(rest) == 0 {
			return nil, nil, false
		}
		child, ok := m[rest[0]]
		if !ok {
			return nil, nil, false
		}
		return child, rest[1:], true
	}
	byIndex := func(list []*Schema) (*Schema, []string, bool) {
		if len(rest) == 0 {
			return nil, nil, false
		}
		idx, err := strconv.Atoi(rest[0])
		if err != nil || idx < 0 || idx >= len(list) {
			return nil, nil, false
		}
		return list[idx], rest[1:], true
	}

	var child *Schema
	var next []string
	var ok bool

	switch seg {
	case "properties":
		child, next, ok = byName(node.Properties)
	case "patternProperties":
		child, next, ok = byName(node.PatternProperties)
	case "definitions", "$defs":
		child, next, ok = byName(node.Definitions)
	case "dependencies":
		if len(rest) > 0 {
			if dep, found := node.Dependencies[rest[0]]; found && dep.Schema != nil {
				child, next, ok = dep.Schema, rest[1:], true
			}
		}
	case "anyOf":
		if node.Kind == KindCompound && node.Combinator == CombinatorAnyOf {
			child, next, ok = byIndex(node.Branches)
		}
	case "allOf":
		if node.Kind == KindCompound && node.Combinator == CombinatorAllOf {
			child, next, ok = byIndex(node.Branches)
		}
	case "oneOf":
		if node.Kind == KindCompound && node.Combinator == CombinatorOneOf {
			child, next, ok = byIndex(node.Branches)
		}
	case "not":
		if node.NotSchema != nil {
			child, next, ok = node.NotSchema, rest, true
		}
	case "items":
		if node.Kind == KindTuple {
			child, next, ok = byIndex(node.TupleItems)
		} else if node.Items != nil {
			child, next, ok = node.Items, rest, true
		}
	case "additionalItems":
		if node.AdditionalItems != nil {
			child, next, ok = node.AdditionalItems, rest, true
		}
	case "additionalProperties":
		if node.AdditionalProperties != nil {
			child, next, ok = node.AdditionalProperties, rest, true
		}
	case "contains":
		if node.Contains != nil {
			child, next, ok = node.Contains, rest, true
		}
	case "propertyNames":
		if node.PropertyNames != nil {
			child, next, ok = node.PropertyNames, rest, true
		}
	case "contentSchema":
		if node.ContentSchema != nil {
			child, next, ok = node.ContentSchema, rest, true
		}
	}

	if !ok {
		return nil, ErrFragmentNotFound
	}
	return walkPointer(child, next)
}
