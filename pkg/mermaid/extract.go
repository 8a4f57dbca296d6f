package mermaid

import (
	"regexp"
	"strings"
)

const fence = "```"

var arrowRe = regexp.MustCompile(`-->|-\.->|==>|->`)

// Extract isolates candidate diagram source from raw model output.
//
// If the input contains a fenced code block, the first block's contents are
// used and a leading "mermaid" language tag is stripped. Without a fence the
// whole input is the candidate. The second return value is false when the
// candidate contains no flowchart keyword at all (neither a graph declaration
// nor an arrow), signalling the caller to substitute a fallback diagram.
func Extract(raw string) (string, bool) {
	code := raw
	if idx := strings.Index(raw, fence); idx >= 0 {
		code = raw[idx+len(fence):]
		if end := strings.Index(code, fence); end >= 0 {
			code = code[:end]
		}
		// The language tag sits between the fence and the first newline.
		if line, rest, found := strings.Cut(code, "\n"); found {
			tag := strings.TrimSpace(line)
			if tag == "" || strings.EqualFold(tag, "mermaid") {
				code = rest
			}
		}
	}
	code = strings.TrimSpace(code)
	return code, containsKeyword(code)
}

func containsKeyword(code string) bool {
	return strings.Contains(code, "graph") || arrowRe.MatchString(code)
}
