package domain

import "time"

// Trace is the ordered record of one simulation run.
type Trace []Transition

// Start returns the start state of the run.
func (t Trace) Start() State {
	if len(t) == 0 {
		return ""
	}
	s, _ := t[0].To.Get()
	return s
}

// Steps returns the pairs produced by consumed inputs, excluding the start entry.
func (t Trace) Steps() []Transition {
	if len(t) <= 1 {
		return nil
	}
	return t[1:]
}

// Stop returns the destination of the last consumed input.
// ok is false when the run consumed no input.
func (t Trace) Stop() (Destination, bool) {
	if len(t) <= 1 {
		return Undefined, false
	}
	return t[len(t)-1].To, true
}

// Terminated reports whether some input hit an undefined transition.
func (t Trace) Terminated() bool {
	for _, step := range t.Steps() {
		if !step.To.Defined() {
			return true
		}
	}
	return false
}

// Visited returns the defined states of the trace, start included, in order.
func (t Trace) Visited() []State {
	out := make([]State, 0, len(t))
	for _, tr := range t {
		if s, ok := tr.To.Get(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Request is one simulation description: a start state followed by inputs.
type Request struct {
	// Raw is the description line as read, used for presentation.
	Raw    string   `json:"raw,omitempty"`
	Start  State    `json:"start"`
	Inputs []Symbol `json:"inputs"`
}

// TraceRecord is a persisted simulation result.
type TraceRecord struct {
	ID        string    `json:"id"`
	Request   Request   `json:"request"`
	Trace     Trace     `json:"trace"`
	CreatedAt time.Time `json:"created_at"`
}
