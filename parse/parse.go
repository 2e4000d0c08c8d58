// Package parse implements the extended-key grammar.
//
// An extended key is a key-spec followed by a colon-separated chain of
// transform names:
//
//	key1|key2|...|keyN:trans1:trans2:...:transN
//
// Each alternative of the key-spec is a candidate key, a quoted literal
// (first and last character the same quote), or the empty token, which
// forces an empty-string result.
package parse

import "strings"

// AltKind classifies one alternative of a key-spec.
type AltKind int

const (
	// PlainKey is a candidate key to probe in the container.
	PlainKey AltKind = iota
	// Literal is a quoted token whose inner text is used verbatim.
	Literal
	// Empty is the zero-length token, forcing an empty-string result.
	Empty
)

// Alt is one alternative of a key-spec. Text is the key name or the
// literal content; Raw is the original token, kept for diagnostics.
type Alt struct {
	Kind AltKind
	Text string
	Raw  string
}

// Expr is a parsed extended key. Alts is never empty.
type Expr struct {
	Alts       []Alt
	Transforms []string
}

// Parse splits raw into ordered alternatives and transform names.
// Everything before the first ':' is the key-spec; each remaining
// segment is a transform name, duplicates and empty names included
// (empty names fail at dispatch, not here). Parsing is purely
// syntactic, touches no container, and never fails: a malformed
// key-spec just yields plain keys that are unlikely to exist.
func Parse(raw string) *Expr {
	segs := strings.Split(raw, ":")
	toks := strings.Split(segs[0], "|")
	alts := make([]Alt, 0, len(toks))
	for _, tok := range toks {
		alts = append(alts, classify(tok))
	}
	return &Expr{Alts: alts, Transforms: segs[1:]}
}

func classify(tok string) Alt {
	if tok == "" {
		return Alt{Kind: Empty}
	}
	if len(tok) >= 2 {
		q := tok[0]
		if (q == '\'' || q == '"') && tok[len(tok)-1] == q {
			// no unescaping: the inner substring is used
			// verbatim, embedded quotes included
			return Alt{Kind: Literal, Text: tok[1 : len(tok)-1], Raw: tok}
		}
	}
	return Alt{Kind: PlainKey, Text: tok, Raw: tok}
}
