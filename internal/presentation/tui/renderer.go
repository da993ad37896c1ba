package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// Markdown renders the table as a Markdown document with one row per state.
// Columns are the union of all symbols, in order of first appearance.
func Markdown(t *automaton.Table) string {
	entries := t.Entries()

	var columns []string
	seen := map[string]bool{}
	for _, e := range entries {
		for _, sym := range e.Row.Symbols() {
			if !seen[string(sym)] {
				seen[string(sym)] = true
				columns = append(columns, string(sym))
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("# Finite Automaton Description\n\n")
	sb.WriteString("| state |")
	for _, c := range columns {
		fmt.Fprintf(&sb, " %s |", escapeCell(c))
	}
	sb.WriteString("\n|---|")
	for range columns {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "| %s |", escapeCell(string(e.State)))
		for _, c := range columns {
			cell := ""
			if dest := e.Row.Get(domain.Symbol(c)); dest.Defined() {
				cell = escapeCell(dest.String())
			}
			fmt.Fprintf(&sb, " %s |", cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, err
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
