package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// RenderCode pretty-prints diagram source to the terminal as a fenced
// markdown code block, wrapped to the terminal width.
func RenderCode(code string) (string, error) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render("```mermaid\n" + code + "```\n")
}
