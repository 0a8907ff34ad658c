package sqlgen

import "strings"

var (
	escaper   = strings.NewReplacer(`\`, `\\`, `'`, `''`)
	unescaper = strings.NewReplacer(`\\`, `\`, `''`, `'`)
)

// Escape makes s safe to embed in a single-quoted SQL string literal by
// doubling backslashes and single quotes.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

func quote(s string) string {
	return "'" + Escape(s) + "'"
}
