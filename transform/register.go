// Package transform provides the static registry of named transforms
// applied to resolved values.
//
// A transform is a pure string to string function. The registry is the
// second dispatch tier: a Dict's instance transforms are consulted
// first, so a container can shadow or extend this set without touching
// it. Registration is expected at setup time, not during concurrent
// lookups.
package transform

import (
	"sort"
	"sync"
)

// Func maps a resolved value, already stringified, to its transformed
// form.
type Func func(string) (string, error)

var (
	mu sync.RWMutex
	d  = map[string]Func{}
)

// Register binds name to fn, replacing any previous binding.
func Register(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	d[name] = fn
}

func init() {
	// aliases bind the identical function value
	Register("uc", Upper)
	Register("upper", Upper)
	Register("lc", Lower)
	Register("lower", Lower)
	Register("urlquote", URLQuote)
	Register("urlquote+", URLQuotePlus)
	Register("htmlquote", XMLQuote)
	Register("xmlquote", XMLQuote)
	Register("unspace", Unspace)
}

// Lookup returns the transform bound to name, or nil.
func Lookup(name string) Func {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Names returns the registered transform names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for name := range d {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}
