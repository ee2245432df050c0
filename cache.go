package jsonschema

import (
	"log/slog"
	"sync"
)

// documentCache maps an absolute URI to its parsed schema document (§4.3).
// Entries are never evicted. Access is mutex-guarded because a Validator
// (and the document cache it owns) may be shared across goroutines that
// each run their own, independent Validate call (§5) — the cache itself is
// the one piece of state those calls share.
type documentCache struct {
	mu   sync.RWMutex
	docs map[string]*Schema
}

func newDocumentCache() *documentCache {
	return &documentCache{docs: make(map[string]*Schema)}
}

func (c *documentCache) get(uri string) (*Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[uri]
	return doc, ok
}

func (c *documentCache) put(uri string, doc *Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[uri] = doc
	slog.Debug("jsonschema: cached document", "uri", uri)
}
