package tui

import (
	"fmt"
	"io"
)

// PrintBanner writes the fasim banner shown before interactive prompts.
func PrintBanner(w io.Writer) {
	p := StyleFor(w).profile
	lines := []struct {
		text, color string
	}{
		{"   __               _", "#818cf8"},
		{"  / _| __ _ ___ ___(_)_ __ ___", "#a78bfa"},
		{" | |_ / _` / __/ __| | '_ ` _ \\", "#c084fc"},
		{" |  _| (_| \\__ \\__ \\ | | | | | |", "#e879f9"},
		{" |_|  \\__,_|___/___/_|_| |_| |_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
