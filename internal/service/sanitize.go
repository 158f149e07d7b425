package service

import "strings"

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize strips literal angle brackets from free text. It is not HTML
// escaping; queries are parameterized, so this only blunts naive markup.
func Sanitize(s string) string {
	return angleBrackets.Replace(s)
}
