package runtime

import "github.com/aretw0/fasim/pkg/domain"

// Lookuper resolves a single transition. *automaton.Table implements it.
type Lookuper interface {
	Lookup(state domain.State, symbol domain.Symbol) domain.Destination
}

// Run walks inputs through the automaton starting at start and returns the trace.
//
// The first pair is ("", start). Every input then yields exactly one pair, so the
// trace always has len(inputs)+1 entries. An undefined transition does not stop
// the walk: the current state becomes Undefined, which has no transitions, and
// every remaining input maps to Undefined as well.
//
// Run has no side effects and is safe to call concurrently on a shared table.
func Run(table Lookuper, start domain.State, inputs []domain.Symbol) domain.Trace {
	trace := make(domain.Trace, 0, len(inputs)+1)
	trace = append(trace, domain.Transition{Input: domain.StartSymbol, To: domain.Some(start)})

	current := domain.Some(start)
	for _, symbol := range inputs {
		next := step(table, current, symbol)
		trace = append(trace, domain.Transition{Input: symbol, To: next})
		current = next
	}
	return trace
}

func step(table Lookuper, current domain.Destination, symbol domain.Symbol) domain.Destination {
	state, ok := current.Get()
	if !ok {
		return domain.Undefined
	}
	return table.Lookup(state, symbol)
}
