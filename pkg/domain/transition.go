package domain

// Transition is one entry of a Trace: the input consumed and where it led.
// The first entry of a Trace has Input == StartSymbol and To == Some(start).
type Transition struct {
	Input Symbol      `json:"input"`
	To    Destination `json:"to"`
}

// TransitionRow holds the outgoing transitions of a single state.
// Symbols are unique; setting an existing symbol overwrites its destination
// but keeps the position of its first declaration.
type TransitionRow struct {
	order []Symbol
	dest  map[Symbol]State
}

// NewTransitionRow creates an empty row.
func NewTransitionRow() TransitionRow {
	return TransitionRow{dest: make(map[Symbol]State)}
}

// Set records symbol -> to, replacing any previous destination for symbol.
func (r *TransitionRow) Set(symbol Symbol, to State) {
	if r.dest == nil {
		r.dest = make(map[Symbol]State)
	}
	if _, ok := r.dest[symbol]; !ok {
		r.order = append(r.order, symbol)
	}
	r.dest[symbol] = to
}

// Get returns the destination for symbol, or Undefined.
func (r TransitionRow) Get(symbol Symbol) Destination {
	to, ok := r.dest[symbol]
	if !ok {
		return Undefined
	}
	return Some(to)
}

// Len returns the number of distinct symbols in the row.
func (r TransitionRow) Len() int {
	return len(r.order)
}

// Symbols returns the symbols in first-declaration order.
func (r TransitionRow) Symbols() []Symbol {
	out := make([]Symbol, len(r.order))
	copy(out, r.order)
	return out
}

// Clone returns an independent copy of the row.
func (r TransitionRow) Clone() TransitionRow {
	c := TransitionRow{
		order: make([]Symbol, len(r.order)),
		dest:  make(map[Symbol]State, len(r.dest)),
	}
	copy(c.order, r.order)
	for k, v := range r.dest {
		c.dest[k] = v
	}
	return c
}

// Equal reports whether both rows map the same symbols to the same states.
func (r TransitionRow) Equal(o TransitionRow) bool {
	if len(r.dest) != len(o.dest) {
		return false
	}
	for k, v := range r.dest {
		if ov, ok := o.dest[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
