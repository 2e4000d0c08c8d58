package transform

import "strings"

// Upper implements the uc/upper transform.
func Upper(s string) (string, error) {
	return strings.ToUpper(s), nil
}

// Lower implements the lc/lower transform.
func Lower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// Unspace removes all space characters.
func Unspace(s string) (string, error) {
	return strings.ReplaceAll(s, " ", ""), nil
}
