package mermaid

import (
	"regexp"
	"strings"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)

// repairStatement parses one segmented statement and returns the repaired
// statements it yields: usually one, several for a node chain, none when the
// statement is unrepairable residue.
//
// Fixups applied, in order: doubled condition pipes collapse to one, bare
// identifiers gain a synthesized label, condition text stranded before its
// pipe is reinterpreted as the condition, and adjacent node tokens with no
// arrow between them are joined by one.
func repairStatement(raw string) []Statement {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for strings.Contains(s, "||") {
		s = strings.ReplaceAll(s, "||", "|")
	}

	parts := arrowRe.Split(s, -1)

	// The missing-arrow repair never applies across a condition marker.
	if len(parts) == 1 && len(pipeIndexes(s)) > 0 {
		return nil
	}

	var (
		seq   []Node
		conds []string // conds[i] labels the hop seq[i] -> seq[i+1]
	)
	for i, part := range parts {
		cond := ""
		if i > 0 {
			cond, part = splitCondition(part)
		}
		nodes, ok := parseNodes(part)
		if !ok {
			// A nested orientation declaration poisons the whole statement.
			return nil
		}
		for j, n := range nodes {
			if len(seq) > 0 {
				if j == 0 {
					conds = append(conds, cond)
				} else {
					conds = append(conds, "")
				}
			}
			seq = append(seq, n)
		}
	}

	switch len(seq) {
	case 0:
		return nil
	case 1:
		n := seq[0]
		return []Statement{{Node: &n}}
	}

	out := make([]Statement, 0, len(seq)-1)
	for i := 0; i < len(seq)-1; i++ {
		out = append(out, Statement{Edge: &Edge{
			From:      seq[i],
			To:        seq[i+1],
			Condition: conds[i],
		}})
	}
	return out
}

// splitCondition separates the condition label from the target portion of an
// edge. Well-formed input keeps the label between two pipes (`|Valid| Next`),
// but upstream models also strand it before the first pipe (`Valid| Next`);
// both read as the condition. The target is whatever follows the last pipe.
func splitCondition(part string) (condition, target string) {
	idxs := pipeIndexes(part)
	if len(idxs) == 0 {
		return "", part
	}
	prev := 0
	for _, ix := range idxs {
		if t := strings.TrimSpace(part[prev:ix]); t != "" && condition == "" {
			condition = t
		}
		prev = ix + 1
	}
	return condition, part[idxs[len(idxs)-1]+1:]
}

// pipeIndexes returns the positions of condition markers that sit outside
// label delimiters and quotes.
func pipeIndexes(s string) []int {
	var idxs []int
	depth := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '[' || c == '{' || c == '(':
			depth++
		case c == ']' || c == '}' || c == ')':
			if depth > 0 {
				depth--
			}
		case c == '|' && depth == 0:
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// parseNodes scans node references out of a statement fragment, skipping any
// punctuation between them. It reports false when the fragment contains a
// bare "graph" keyword, which marks a nested declaration.
func parseNodes(text string) ([]Node, bool) {
	var nodes []Node
	i := 0
	for i < len(text) {
		m := identRe.FindString(text[i:])
		if m == "" {
			i++
			continue
		}
		if m == "graph" {
			return nil, false
		}
		n := Node{ID: m}
		i += len(m)
		if i < len(text) {
			switch text[i] {
			case '[':
				inner, w := scanBlock(text[i:], '[', ']')
				n.Label, i = innerLabel(inner), i+w
			case '{':
				inner, w := scanBlock(text[i:], '{', '}')
				n.Label, n.Shape, i = innerLabel(inner), ShapeDecision, i+w
			case '(':
				inner, w := scanBlock(text[i:], '(', ')')
				n.Label, i = innerLabel(inner), i+w
			}
		}
		if n.Label == "" {
			n.Label = n.ID
		}
		nodes = append(nodes, n)
	}
	return nodes, true
}

// scanBlock consumes a delimiter block starting at s[0] and returns its inner
// text plus the number of bytes consumed. Nesting and quoted sections are
// honored; an unterminated block runs to the end of the fragment.
func scanBlock(s string, open, close byte) (string, int) {
	depth := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[1:i], i + 1
			}
		}
	}
	return s[1:], len(s)
}

// innerLabel normalizes the text inside a label block: surrounding
// whitespace goes, as does one layer of wrapping quotes.
func innerLabel(inner string) string {
	t := strings.TrimSpace(inner)
	if len(t) >= 2 && t[0] == '"' && t[len(t)-1] == '"' {
		t = t[1 : len(t)-1]
	}
	return strings.TrimSpace(t)
}
