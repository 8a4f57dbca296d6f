package mermaid

import "strings"

// Segment splits a diagram body into discrete statement texts. It cuts on
// statement separators and line breaks, trims whitespace and discards empty
// results. Statement contents are not interpreted.
func Segment(body string) []string {
	parts := strings.FieldsFunc(body, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
