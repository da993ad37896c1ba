package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
)

// GraphOverlay contains the run data to visualize on the graph.
type GraphOverlay struct {
	Visited []domain.State
	Current domain.State
	// Terminated marks a run that hit an undefined transition.
	Terminated bool
}

// OverlayFromTrace builds an overlay from a finished trace.
func OverlayFromTrace(trace domain.Trace) *GraphOverlay {
	visited := trace.Visited()
	o := &GraphOverlay{Visited: visited, Terminated: trace.Terminated()}
	if len(visited) > 0 {
		o.Current = visited[len(visited)-1]
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart for the table.
// Declared states are drawn as rectangles, states that only appear as a destination
// as circles. Parallel edges between the same pair of states are merged into one
// edge labelled with every symbol.
func GenerateMermaid(t *automaton.Table, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	declared := make(map[domain.State]bool)
	for _, s := range t.States() {
		declared[s] = true
	}

	var sinks []domain.State
	seenSink := make(map[domain.State]bool)
	for _, e := range t.Entries() {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", sanitizeMermaidID(string(e.State)), escapeLabel(string(e.State))))
		for _, sym := range e.Row.Symbols() {
			to, _ := e.Row.Get(sym).Get()
			if !declared[to] && !seenSink[to] {
				seenSink[to] = true
				sinks = append(sinks, to)
			}
		}
	}
	for _, s := range sinks {
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", sanitizeMermaidID(string(s)), escapeLabel(string(s))))
	}

	for _, e := range t.Entries() {
		var targets []domain.State
		labels := make(map[domain.State][]string)
		for _, sym := range e.Row.Symbols() {
			to, _ := e.Row.Get(sym).Get()
			if _, ok := labels[to]; !ok {
				targets = append(targets, to)
			}
			labels[to] = append(labels[to], escapeLabel(string(sym)))
		}
		for _, to := range targets {
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
				sanitizeMermaidID(string(e.State)), strings.Join(labels[to], ", "), sanitizeMermaidID(string(to))))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef terminated fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, s := range overlay.Visited {
			safeID := sanitizeMermaidID(string(s))
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.Current != "" {
			class := "current"
			if overlay.Terminated {
				class = "terminated"
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", sanitizeMermaidID(string(overlay.Current)), class))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	if id == "" {
		return "empty_"
	}
	var sb strings.Builder
	sb.WriteString("s_")
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteString(fmt.Sprintf("_%x_", r))
		}
	}
	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
