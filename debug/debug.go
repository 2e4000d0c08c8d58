// Package debug provides env-gated debug logging for lookups.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lookup  bool
	Resolve bool
	Xform   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lookup = boolEnv("FDICT_DEBUG_LOOKUP")
	d.Resolve = boolEnv("FDICT_DEBUG_RESOLVE")
	d.Xform = boolEnv("FDICT_DEBUG_XFORM")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lookup() bool {
	return d.Lookup
}
func Resolve() bool {
	return d.Resolve
}
func Xform() bool {
	return d.Xform
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
