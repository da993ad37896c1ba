package dsl

import (
	"strings"

	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
)

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name    domain.State
	row     domain.TransitionRow
	builder *Builder
}

// On adds a transition on input to the destination state. A later call for
// the same input replaces the destination.
func (s *StateBuilder) On(input domain.Symbol, to domain.State) *StateBuilder {
	s.row.Set(input, to)
	return s
}

// Loop adds a transition back to the state itself for every input.
func (s *StateBuilder) Loop(inputs ...domain.Symbol) *StateBuilder {
	for _, in := range inputs {
		s.On(in, s.name)
	}
	return s
}

// State switches to another state, allowing chained declarations.
func (s *StateBuilder) State(name domain.State) *StateBuilder {
	return s.builder.State(name)
}

func (s *StateBuilder) line() string {
	fields := []string{string(s.name)}
	for _, sym := range s.row.Symbols() {
		fields = append(fields, string(sym), s.row.Get(sym).String())
	}
	return strings.Join(fields, automaton.Delimiter)
}
