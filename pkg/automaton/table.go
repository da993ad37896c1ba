package automaton

import (
	"sort"
	"strings"

	"github.com/aretw0/fasim/pkg/domain"
)

// Entry is one state of the table together with its transitions.
type Entry struct {
	State domain.State
	Row   domain.TransitionRow
}

// Table maps each declared state to its transition row.
// A Table is read-only once built.
type Table struct {
	rows        map[domain.State]domain.TransitionRow
	diagnostics []Diagnostic
}

// Lookup returns the destination reached from state on symbol.
// States without a row and symbols missing from a row both yield domain.Undefined.
func (t *Table) Lookup(state domain.State, symbol domain.Symbol) domain.Destination {
	if t == nil {
		return domain.Undefined
	}
	row, ok := t.rows[state]
	if !ok {
		return domain.Undefined
	}
	return row.Get(symbol)
}

// Row returns a copy of the transitions declared for state.
func (t *Table) Row(state domain.State) (domain.TransitionRow, bool) {
	row, ok := t.rows[state]
	if !ok {
		return domain.TransitionRow{}, false
	}
	return row.Clone(), true
}

// Len returns the number of declared states.
func (t *Table) Len() int {
	return len(t.rows)
}

// States returns the declared states sorted by name.
func (t *Table) States() []domain.State {
	states := make([]domain.State, 0, len(t.rows))
	for s := range t.rows {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// Entries returns every declared state and its row, sorted by state name.
func (t *Table) Entries() []Entry {
	states := t.States()
	entries := make([]Entry, 0, len(states))
	for _, s := range states {
		entries = append(entries, Entry{State: s, Row: t.rows[s].Clone()})
	}
	return entries
}

// Diagnostics returns the recoverable problems found while parsing.
func (t *Table) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(t.diagnostics))
	copy(out, t.diagnostics)
	return out
}

// Lines serializes the table back to its text form, one state per line in
// state order. Parsing the result yields an Equal table.
func (t *Table) Lines() []string {
	entries := t.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		var sb strings.Builder
		sb.WriteString(string(e.State))
		for _, sym := range e.Row.Symbols() {
			sb.WriteString(Delimiter)
			sb.WriteString(string(sym))
			sb.WriteString(Delimiter)
			sb.WriteString(e.Row.Get(sym).String())
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Equal reports whether both tables declare the same states with the same transitions.
func (t *Table) Equal(o *Table) bool {
	if t.Len() != o.Len() {
		return false
	}
	for s, row := range t.rows {
		orow, ok := o.rows[s]
		if !ok || !row.Equal(orow) {
			return false
		}
	}
	return true
}
