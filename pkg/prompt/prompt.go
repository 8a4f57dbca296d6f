// Package prompt assembles the instruction sent to the upstream
// text-generation model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/archwize/archwize/pkg/mermaid"
)

const fence = "```"

const template = `You are an AI designed to generate valid, properly formatted Mermaid.js diagrams based on user descriptions.

Create a %[1]s flowchart (%[2]s) for the following:
%[3]s

Output ONLY the Mermaid.js code, nothing else.

Example format:
%[4]s
graph %[2]s;
  Start["Begin Process"] --> Step1["First Step"];
  Step1 --> Decision{"Decision Point"};
  Decision -->|Yes| Step2["Second Step"];
  Decision -->|No| End["Process Complete"];
  Step2 --> End;
%[4]s

Your diagram should have:
- Proper node connections with arrows (-->)
- Node text in quotes ["Text"]
- Decision diamonds with braces {"Decision"}
- Conditional paths marked with pipes |Condition|
- Each line must end with a semicolon except the graph declaration
- Use clear, meaningful labels`

// Build returns the full instruction for a user prompt, with the requested
// orientation substituted into the directions and the example, wrapped in
// Mistral-style [INST] markers.
func Build(userPrompt string, orientation mermaid.Orientation) string {
	direction := "top-down"
	if orientation == mermaid.LeftRight {
		direction = "left-to-right"
	}
	body := fmt.Sprintf(template, direction, orientation, strings.TrimSpace(userPrompt), fence)
	return "<s>[INST] " + body + " [/INST]"
}
