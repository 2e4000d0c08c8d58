package fdict

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyNotFound reports that no alternative of an extended key
	// resolved to a value.
	ErrKeyNotFound = errors.New("key not found")
	// ErrUnknownTransform reports a transform name bound in neither
	// dispatch tier.
	ErrUnknownTransform = errors.New("unknown transform")
)

// KeyNotFoundError carries every alternative token tried, in original
// order.
type KeyNotFoundError struct {
	Alternatives []string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrKeyNotFound, strings.Join(e.Alternatives, ", "))
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// UnknownTransformError carries the unrecognized transform name and,
// when some registered name is close to it, a suggestion.
type UnknownTransformError struct {
	Name string
	Hint string
}

func (e *UnknownTransformError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%v: %q (did you mean %q?)", ErrUnknownTransform, e.Name, e.Hint)
	}
	return fmt.Sprintf("%v: %q", ErrUnknownTransform, e.Name)
}

func (e *UnknownTransformError) Unwrap() error {
	return ErrUnknownTransform
}
