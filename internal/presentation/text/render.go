// Package text renders automata and traces in the line-oriented console format.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
)

// Styler decorates fragments of the output. Plain leaves them untouched.
type Styler interface {
	State(s string) string
	Illegal(s string) string
	Heading(s string) string
}

// Plain is the undecorated Styler.
type Plain struct{}

func (Plain) State(s string) string   { return s }
func (Plain) Illegal(s string) string { return s }
func (Plain) Heading(s string) string { return s }

// Printer writes tables and traces to w.
type Printer struct {
	w     io.Writer
	style Styler
}

// NewPrinter creates a Printer. A nil style means Plain.
func NewPrinter(w io.Writer, style Styler) *Printer {
	if style == nil {
		style = Plain{}
	}
	return &Printer{w: w, style: style}
}

// FormatRow renders a row as map[symbol->dest,...] in declaration order.
func FormatRow(row domain.TransitionRow) string {
	parts := make([]string, 0, row.Len())
	for _, sym := range row.Symbols() {
		parts = append(parts, string(sym)+"->"+row.Get(sym).String())
	}
	return "map[" + strings.Join(parts, ",") + "]"
}

// Table writes the automaton description, states in alphabetical order.
func (p *Printer) Table(t *automaton.Table) error {
	var sb strings.Builder
	sb.WriteString("\n" + p.style.Heading("Finite Automaton Description") + "\n")
	for _, e := range t.Entries() {
		fmt.Fprintf(&sb, "  %s transitions: %s\n", p.style.State(string(e.State)), FormatRow(e.Row))
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

// Simulation writes the header line for req followed by its trace.
func (p *Printer) Simulation(req domain.Request, trace domain.Trace) error {
	header := "\n" + p.style.Heading("Starting new simulation with description: "+req.Raw) + "\n"
	if _, err := io.WriteString(p.w, header); err != nil {
		return err
	}
	return p.Trace(trace)
}

// Trace writes the start state, one line per consumed input and the stop state.
// With no inputs the stop state is left empty.
func (p *Printer) Trace(trace domain.Trace) error {
	var sb strings.Builder
	for i, tr := range trace {
		if i == 0 {
			sb.WriteString("Start state = " + p.style.State(tr.To.String()) + "\n")
			continue
		}
		sb.WriteString("  Input = " + string(tr.Input))
		if tr.To.Defined() {
			sb.WriteString("; new state = " + p.style.State(tr.To.String()) + "\n")
		} else {
			sb.WriteString("; " + p.style.Illegal("illegal input: terminated") + "\n")
		}
	}

	stop := ""
	if dest, ok := trace.Stop(); ok {
		if dest.Defined() {
			stop = p.style.State(dest.String())
		} else {
			stop = p.style.Illegal(dest.String())
		}
	}
	sb.WriteString("Stop state = " + stop + "\n")

	_, err := io.WriteString(p.w, sb.String())
	return err
}

// WriteTable writes t to w without decoration.
func WriteTable(w io.Writer, t *automaton.Table) error {
	return NewPrinter(w, nil).Table(t)
}

// WriteSimulation writes req and its trace to w without decoration.
func WriteSimulation(w io.Writer, req domain.Request, trace domain.Trace) error {
	return NewPrinter(w, nil).Simulation(req, trace)
}

// WriteTrace writes trace to w without decoration.
func WriteTrace(w io.Writer, trace domain.Trace) error {
	return NewPrinter(w, nil).Trace(trace)
}
