package parser

import "strings"

// StripComments removes every annotation block from raw query text.
// A block runs from an open marker to the first following close marker,
// spanning newlines. An unterminated open marker deletes through end of
// input. Malformed markers are not an error; no match is a no-op.
func StripComments(text, open, close string) string {
	if open == "" || close == "" {
		return text
	}

	var b strings.Builder
	for {
		start := strings.Index(text, open)
		if start < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:start])

		rest := text[start+len(open):]
		end := strings.Index(rest, close)
		if end < 0 {
			// Unterminated block swallows the remainder
			return b.String()
		}
		text = rest[end+len(close):]
	}
}
