package domain

import (
	"encoding/json"
	"fmt"
)

// NoneLabel is the text used for an undefined destination at presentation boundaries.
const NoneLabel = "None"

// State identifies a state of the automaton.
type State string

// Symbol is one input event. The empty Symbol marks the synthetic start entry of a Trace.
type Symbol string

// StartSymbol is the input recorded on the first pair of every Trace.
const StartSymbol Symbol = ""

// Destination is the outcome of a transition lookup.
// The zero value is Undefined.
type Destination struct {
	state   State
	defined bool
}

// Undefined is the destination of a transition that does not exist.
var Undefined = Destination{}

// Some wraps a defined destination state.
func Some(s State) Destination {
	return Destination{state: s, defined: true}
}

// Get returns the destination state and whether it is defined.
func (d Destination) Get() (State, bool) {
	return d.state, d.defined
}

// Defined reports whether the destination names a state.
func (d Destination) Defined() bool {
	return d.defined
}

// String renders the destination, using NoneLabel when undefined.
func (d Destination) String() string {
	if !d.defined {
		return NoneLabel
	}
	return string(d.state)
}

// MarshalJSON encodes a defined destination as a string and Undefined as null.
func (d Destination) MarshalJSON() ([]byte, error) {
	if !d.defined {
		return []byte("null"), nil
	}
	return json.Marshal(string(d.state))
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *Destination) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Undefined
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}
	*d = Some(State(s))
	return nil
}
