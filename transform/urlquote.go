package transform

import (
	"net/url"
	"strings"
)

// URLQuotePlus percent-encodes s for use in a URL, with spaces encoded
// as '+'.
func URLQuotePlus(s string) (string, error) {
	return url.QueryEscape(s), nil
}

// URLQuote percent-encodes s exactly as URLQuotePlus does, except that
// spaces become "%20". QueryEscape turns a literal '+' into "%2B", so
// any '+' left in its output is an encoded space.
func URLQuote(s string) (string, error) {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20"), nil
}
