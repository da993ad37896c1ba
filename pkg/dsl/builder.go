package dsl

import (
	"github.com/aretw0/fasim/pkg/adapters/memory"
	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
)

// Builder manages the table construction.
type Builder struct {
	order  []domain.State
	states map[domain.State]*StateBuilder
}

// New creates a new table builder.
func New() *Builder {
	return &Builder{
		states: make(map[domain.State]*StateBuilder),
	}
}

// State declares a state in the table.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(name domain.State) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, row: domain.NewTransitionRow(), builder: b}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Lines renders the table in source format, states in declaration order.
func (b *Builder) Lines() []string {
	lines := make([]string, 0, len(b.order))
	for _, name := range b.order {
		lines = append(lines, b.states[name].line())
	}
	return lines
}

// Build compiles the declared states into a Table.
func (b *Builder) Build(opts ...automaton.Option) *automaton.Table {
	return automaton.Parse(b.Lines(), opts...)
}

// Loader returns a table loader over the built table and the given request lines.
func (b *Builder) Loader(requests ...string) *memory.Loader {
	return memory.NewLoader(b.Lines(), requests)
}
