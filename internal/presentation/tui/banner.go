package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for ArchWize.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Indigo-to-rose gradient, one line per color stop.
	lines := []struct {
		text  string
		color string
	}{
		{`    _             _  __        ___          `, "#818cf8"},
		{`   / \   _ __ ___| |_\ \      / (_)_______ `, "#a78bfa"},
		{`  / _ \ | '__/ __| '_ \ \ /\ / /| |_  / _ \`, "#c084fc"},
		{` / ___ \| | | (__| | | \ V  V / | |/ /  __/`, "#e879f9"},
		{`/_/   \_\_|  \___|_| |_|\_/\_/  |_/___\___|`, "#f472b6"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
