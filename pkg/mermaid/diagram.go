package mermaid

import (
	"errors"
	"strings"
)

// ErrInvalidDiagram is returned when no statement survives repair and the
// diagram would render empty.
var ErrInvalidDiagram = errors.New("no valid diagram statements")

// Orientation selects the flowchart layout direction.
type Orientation string

const (
	// TopDown lays the flowchart out vertically (graph TD).
	TopDown Orientation = "TD"
	// LeftRight lays the flowchart out horizontally (graph LR).
	LeftRight Orientation = "LR"
)

// ParseOrientation maps a user-supplied string to an Orientation.
// Anything that is not "LR" falls back to TopDown.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(LeftRight)) {
		return LeftRight
	}
	return TopDown
}

// Shape determines the delimiter pair a node label is rendered with.
type Shape int

const (
	// ShapeRectangle renders as ID["Label"].
	ShapeRectangle Shape = iota
	// ShapeDecision renders as ID{"Label"}.
	ShapeDecision
)

// Node is a single flowchart node: a bareword identifier plus an optional
// display label. A Node without an explicit label renders using its ID.
type Node struct {
	ID    string
	Label string
	Shape Shape
}

// Edge is a directed connection between two nodes with an optional
// branch condition.
type Edge struct {
	From      Node
	To        Node
	Condition string
}

// Statement is one line of the diagram body: either a node declaration or an
// edge. Exactly one field is set.
type Statement struct {
	Node *Node
	Edge *Edge
}

// Diagram is the in-memory representation of a flowchart: one orientation
// and an ordered statement list. It is built fresh per request and holds no
// state across calls.
type Diagram struct {
	Orientation Orientation
	Statements  []Statement
}

// String serializes the diagram to Mermaid source.
//
// The first line is always "graph <TD|LR>;". Every statement is indented two
// spaces and terminated with a semicolon. A node's label is emitted on its
// first occurrence only; later occurrences render as a bare identifier, which
// Mermaid resolves as a back-reference.
func (d *Diagram) String() string {
	var b strings.Builder
	b.WriteString("graph ")
	b.WriteString(string(d.Orientation))
	b.WriteString(";\n")

	labeled := make(map[string]bool)
	for _, st := range d.Statements {
		switch {
		case st.Edge != nil:
			b.WriteString("  ")
			b.WriteString(renderNode(st.Edge.From, labeled))
			if st.Edge.Condition != "" {
				b.WriteString(" -->|")
				b.WriteString(sanitizeLabel(st.Edge.Condition))
				b.WriteString("| ")
			} else {
				b.WriteString(" --> ")
			}
			b.WriteString(renderNode(st.Edge.To, labeled))
			b.WriteString(";\n")
		case st.Node != nil:
			b.WriteString("  ")
			b.WriteString(renderNode(*st.Node, labeled))
			b.WriteString(";\n")
		}
	}
	return b.String()
}

// renderNode emits a node reference, attaching the label only the first time
// an identifier appears in the document.
func renderNode(n Node, labeled map[string]bool) string {
	if labeled[n.ID] {
		return n.ID
	}
	labeled[n.ID] = true

	label := n.Label
	if label == "" {
		label = n.ID
	}
	open, close := "[\"", "\"]"
	if n.Shape == ShapeDecision {
		open, close = "{\"", "\"}"
	}
	return n.ID + open + sanitizeLabel(label) + close
}

// sanitizeLabel strips characters that would break the statement grammar:
// separators end statements, pipes delimit conditions and double quotes
// delimit the label itself.
func sanitizeLabel(s string) string {
	r := strings.NewReplacer(";", ",", "|", "/", "\"", "'")
	return strings.TrimSpace(r.Replace(s))
}
