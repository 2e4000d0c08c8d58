package transform

import "strings"

var xmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// XMLQuote escapes the XML special characters '&', '<' and '>'. Quote
// characters pass through untouched.
func XMLQuote(s string) (string, error) {
	return xmlReplacer.Replace(s), nil
}
