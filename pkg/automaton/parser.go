package automaton

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aretw0/fasim/pkg/domain"
)

// DiagnosticKind classifies a recoverable parse problem.
type DiagnosticKind string

const (
	// DanglingSymbol: a line ends with a symbol that has no destination.
	DanglingSymbol DiagnosticKind = "dangling_symbol"
	// ReservedState: a line uses the reserved "None" name as a state or destination.
	ReservedState DiagnosticKind = "reserved_state"
)

// Diagnostic describes input that was skipped while parsing.
type Diagnostic struct {
	Line  int            `json:"line"` // 1-based
	Kind  DiagnosticKind `json:"kind"`
	State domain.State   `json:"state"`
	Field string         `json:"field"`
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DanglingSymbol:
		return fmt.Sprintf("line %d: state %q: symbol %q has no destination", d.Line, d.State, d.Field)
	case ReservedState:
		return fmt.Sprintf("line %d: state %q: %q is reserved", d.Line, d.State, d.Field)
	}
	return fmt.Sprintf("line %d: %s", d.Line, d.Kind)
}

// Parse builds a Table from table lines.
// Each line declares one state; a state declared again replaces its earlier row.
// Parsing never fails on content: malformed pairs are dropped and reported
// through Table.Diagnostics.
func Parse(lines []string, opts ...Option) *Table {
	o := newOptions(opts)
	t := &Table{rows: make(map[domain.State]domain.TransitionRow)}

	shared := domain.NewTransitionRow()
	for n, line := range lines {
		if isBlank(line) {
			continue
		}
		fields := o.split(line)
		state := domain.State(fields[0])
		if state == domain.NoneLabel {
			t.report(o, Diagnostic{Line: n + 1, Kind: ReservedState, State: state, Field: fields[0]})
			continue
		}

		row := domain.NewTransitionRow()
		if o.sharedRow {
			row = shared
		}
		for i := 2; i < len(fields); i += 2 {
			symbol, dest := domain.Symbol(fields[i-1]), domain.State(fields[i])
			if dest == domain.NoneLabel {
				t.report(o, Diagnostic{Line: n + 1, Kind: ReservedState, State: state, Field: fields[i]})
				continue
			}
			row.Set(symbol, dest)
		}
		if len(fields) > 1 && len(fields)%2 == 0 {
			t.report(o, Diagnostic{Line: n + 1, Kind: DanglingSymbol, State: state, Field: fields[len(fields)-1]})
		}

		if o.sharedRow {
			shared = row
			row = row.Clone()
		}
		t.rows[state] = row
	}
	return t
}

// ParseReader reads table lines from r and parses them.
func ParseReader(r io.Reader, opts ...Option) (*Table, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	return Parse(lines, opts...), nil
}

func (t *Table) report(o options, d Diagnostic) {
	t.diagnostics = append(t.diagnostics, d)
	o.logger.Warn("Ignoring table field", "line", d.Line, "kind", string(d.Kind), "state", string(d.State), "field", d.Field)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
