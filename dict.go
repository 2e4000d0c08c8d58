// Package fdict implements a key-value container with extended-key
// lookup: a key expression can name an ordered list of alternative
// keys, quoted literal fallbacks, an empty-fallback marker, and a
// chain of named transforms applied to the resolved value.
//
// An extended key has the form
//
//	key1|key2|...|keyN:trans1:trans2:...:transN
//
// Get tries the alternatives left to right and then runs the
// transform chain over the result. A key that exists verbatim in the
// container always wins, with no interpretation of '|' or ':'.
package fdict

import (
	"sort"
	"sync"

	"github.com/fdict-format/fdict/transform"
)

// Dict is a string-keyed container whose Get understands extended
// keys. A Dict is safe for concurrent use; a single lookup observes a
// consistent snapshot of the entries.
type Dict struct {
	mu      sync.RWMutex
	entries map[string]any
	xforms  map[string]transform.Func
}

// New returns a Dict populated from the given entry maps, applied in
// order.
func New(entries ...map[string]any) *Dict {
	d := &Dict{entries: map[string]any{}}
	for _, m := range entries {
		for k, v := range m {
			d.entries[k] = v
		}
	}
	return d
}

// Set stores value under key, replacing any previous value.
func (d *Dict) Set(key string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = value
}

// Lookup returns the value stored under exactly key. It performs no
// extended-key interpretation; see Get for that.
func (d *Dict) Lookup(key string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.entries[key]
	return v, ok
}

// Has reports whether exactly key is present.
func (d *Dict) Has(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.entries[key]
	return ok
}

// Delete removes key if present.
func (d *Dict) Delete(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.entries, key)
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Keys returns the container's keys, sorted.
func (d *Dict) Keys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]string, 0, len(d.entries))
	for k := range d.entries {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// RegisterTransform binds a transform to name on this Dict only.
// Instance transforms are consulted before the static registry for
// every name in a chain, so a Dict can shadow a registry binding or
// carry transforms of its own. Registration replaces any previous
// instance binding for name.
func (d *Dict) RegisterTransform(name string, fn transform.Func) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.xforms == nil {
		d.xforms = map[string]transform.Func{}
	}
	d.xforms[name] = fn
}
