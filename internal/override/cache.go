// Package override keeps locally asserted field values until the record store reflects them.
package override

import (
	"sync"
)

// Outcome describes what reconciliation did with an entry.
type Outcome int

const (
	// None means no override exists for the id.
	None Outcome = iota
	// Matched means the fresh value caught up and the override was cleared.
	Matched
	// Masked means the asserted value replaced a stale fresh value.
	Masked
	// Expired means the override outlived its cycle budget and was dropped.
	Expired
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Masked:
		return "masked"
	case Expired:
		return "expired"
	default:
		return "none"
	}
}

type entry[V any] struct {
	value  V
	cycles int
}

// Cache maps entity ids to asserted values of one field.
type Cache[V any] struct {
	mu        sync.Mutex
	entries   map[string]*entry[V]
	equal     func(a, b V) bool
	maxCycles int
}

// New creates a cache. An override that keeps mismatching is masked for at
// most maxCycles reconciliations and dropped on the next one; zero keeps it forever.
func New[V any](maxCycles int, equal func(a, b V) bool) *Cache[V] {
	if maxCycles < 0 {
		maxCycles = 0
	}
	return &Cache[V]{
		entries:   make(map[string]*entry[V]),
		equal:     equal,
		maxCycles: maxCycles,
	}
}

// Set asserts value for id, replacing any earlier assertion.
func (c *Cache[V]) Set(id string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = &entry[V]{value: value}
}

// Get returns the asserted value for id.
func (c *Cache[V]) Get(id string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Clear drops the override for id.
func (c *Cache[V]) Clear(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Len reports the number of active overrides.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// IDs lists ids with active overrides.
func (c *Cache[V]) IDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	return ids
}

// Reconcile resolves the value to publish for id given the freshly fetched one.
func (c *Cache[V]) Reconcile(id string, fresh V) (V, Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok {
		return fresh, None
	}
	if c.equal(fresh, e.value) {
		delete(c.entries, id)
		return fresh, Matched
	}
	if c.tick(e) {
		delete(c.entries, id)
		return fresh, Expired
	}
	return e.value, Masked
}

// Sweep ages overrides whose ids were absent from a fetch and returns the ones that expired.
func (c *Cache[V]) Sweep(seen map[string]struct{}) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expired []string
	for id, e := range c.entries {
		if _, ok := seen[id]; ok {
			continue
		}
		if c.tick(e) {
			delete(c.entries, id)
			expired = append(expired, id)
		}
	}
	return expired
}

func (c *Cache[V]) tick(e *entry[V]) bool {
	e.cycles++
	return c.maxCycles > 0 && e.cycles > c.maxCycles
}
