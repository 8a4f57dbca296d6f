package mermaid

import (
	"fmt"
	"strings"
)

// Repair transforms arbitrary model output into syntactically valid flowchart
// source with the requested orientation. It is a straight-line pipeline:
// extract, normalize the declaration, segment, repair each statement,
// re-render. Re-running Repair on its own output is a no-op.
//
// The only failure mode is ErrInvalidDiagram, returned when the input carries
// no flowchart keyword at all or when no statement survives repair. Callers
// holding the original prompt are expected to substitute Fallback then.
func Repair(raw string, orientation Orientation) (string, error) {
	code, ok := Extract(raw)
	if !ok {
		return "", fmt.Errorf("no flowchart syntax in model output: %w", ErrInvalidDiagram)
	}

	text := NormalizeDeclaration(code, orientation)
	_, body, _ := strings.Cut(text, "\n")

	d := &Diagram{Orientation: orientation}
	for _, seg := range Segment(body) {
		d.Statements = append(d.Statements, repairStatement(seg)...)
	}
	if len(d.Statements) == 0 {
		return "", ErrInvalidDiagram
	}
	return d.String(), nil
}

// Fallback returns a hand-authored diagram matching the prompt's topic. It is
// total: every prompt, including the empty string, maps to at least the
// generic template.
func Fallback(prompt string, orientation Orientation) string {
	return Template(Classify(prompt), orientation)
}
