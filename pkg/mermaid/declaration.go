package mermaid

import (
	"regexp"
	"strings"
)

var (
	declKeywordRe = regexp.MustCompile(`\bgraph\b`)
	declLineRe    = regexp.MustCompile(`^graph\b[^;\n]*;?`)
)

// NormalizeDeclaration repairs the orientation declaration so that the first
// line of the result is exactly "graph <TD|LR>;" with the requested code.
//
// Known upstream failure modes are absorbed here: stray arrow tokens after the
// keyword ("graph --> TD;"), a missing or foreign orientation code, statements
// crammed onto the declaration line, and a missing declaration altogether.
// The function is idempotent.
func NormalizeDeclaration(text string, requested Orientation) string {
	decl := "graph " + string(requested) + ";"

	loc := declKeywordRe.FindStringIndex(text)
	if loc == nil {
		// No declaration keyword anywhere: synthesize one ahead of the body.
		return decl + "\n" + strings.TrimSpace(text)
	}

	// Drop anything preceding the declaration, then rewrite the declaration
	// itself regardless of what orientation or arrow debris it carries.
	rest := declLineRe.ReplaceAllString(text[loc[0]:], "")
	return decl + "\n" + strings.TrimSpace(rest)
}
