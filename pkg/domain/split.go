package domain

import (
	"strings"
	"unicode"
)

// Split cuts the next path segment off an input line: the text up to the
// first whitespace run, and the remainder after it. With no whitespace the
// whole line is the head and the rest is empty. Surrounding whitespace is
// ignored, so the returned rest is ready for the next Split.
func Split(s string) (head, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
