package fdict

import (
	"fmt"

	"github.com/fdict-format/fdict/debug"
	"github.com/fdict-format/fdict/parse"
	"github.com/fdict-format/fdict/transform"
)

// Get resolves rawKey against the container. A key present verbatim
// returns its value untouched; otherwise rawKey is parsed as an
// extended key, its alternatives are tried left to right, and the
// transform chain, if any, runs over the stringified result.
//
// Get fails with an error wrapping ErrKeyNotFound when no alternative
// resolves, and with one wrapping ErrUnknownTransform when a name in
// the chain is bound in neither the instance nor the static tier.
func (d *Dict) Get(rawKey string) (any, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if v, ok := d.entries[rawKey]; ok {
		return v, nil
	}
	expr := parse.Parse(rawKey)
	if debug.Lookup() {
		debug.Logf("get %q: %d alternatives, %d transforms\n",
			rawKey, len(expr.Alts), len(expr.Transforms))
	}
	v, short, err := d.resolve(expr.Alts)
	if err != nil {
		return nil, err
	}
	if short {
		// the empty-fallback token discards the transform chain too
		return "", nil
	}
	if len(expr.Transforms) == 0 {
		return v, nil
	}
	return d.applyTransforms(Stringify(v), expr.Transforms)
}

// GetString is Get with the result stringified, for callers feeding
// templates directly.
func (d *Dict) GetString(rawKey string) (string, error) {
	v, err := d.Get(rawKey)
	if err != nil {
		return "", err
	}
	return Stringify(v), nil
}

// resolve scans alts left to right, keeping a single candidate slot.
// The empty-fallback token short-circuits the entire lookup to "".
// A literal always overwrites the candidate; a present plain key only
// fills an unset or falsy one. The caller holds the read lock.
func (d *Dict) resolve(alts []parse.Alt) (v any, short bool, err error) {
	var (
		candidate any
		set       bool
	)
	for _, alt := range alts {
		switch alt.Kind {
		case parse.Empty:
			if debug.Resolve() {
				debug.Logf("resolve: empty fallback, short-circuit\n")
			}
			return nil, true, nil
		case parse.Literal:
			candidate, set = alt.Text, true
		case parse.PlainKey:
			ev, ok := d.entries[alt.Text]
			if !ok {
				continue
			}
			// a later key fills an unset or falsy slot, but
			// never replaces a truthy match
			if !set || !Truth(candidate) {
				candidate, set = ev, true
			}
		}
	}
	if !set || !Truth(candidate) {
		return nil, false, &KeyNotFoundError{Alternatives: tokens(alts)}
	}
	if debug.Resolve() {
		debug.Logf("resolve: candidate %v\n", candidate)
	}
	return candidate, false, nil
}

func tokens(alts []parse.Alt) []string {
	res := make([]string, len(alts))
	for i, alt := range alts {
		res[i] = alt.Raw
	}
	return res
}

// applyTransforms runs the named transforms over s in listed order,
// dispatching each name against the instance tier first, then the
// static registry. The caller holds the read lock.
func (d *Dict) applyTransforms(s string, names []string) (any, error) {
	for _, name := range names {
		fn := d.xforms[name]
		if fn == nil {
			fn = transform.Lookup(name)
		}
		if fn == nil {
			return nil, &UnknownTransformError{
				Name: name,
				Hint: transform.Nearest(name, d.transformNames()),
			}
		}
		out, err := fn(s)
		if err != nil {
			return nil, fmt.Errorf("transform %q: %w", name, err)
		}
		if debug.Xform() {
			debug.Logf("xform %s: %q -> %q\n", name, s, out)
		}
		s = out
	}
	return s, nil
}

func (d *Dict) transformNames() []string {
	names := transform.Names()
	for name := range d.xforms {
		names = append(names, name)
	}
	return names
}
