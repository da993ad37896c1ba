package domain

import "errors"

// ErrTraceNotFound is returned when a trace ID cannot be found in the store.
var ErrTraceNotFound = errors.New("trace not found")

// ErrEmptyRequest is returned when a simulation description has no start state.
var ErrEmptyRequest = errors.New("empty simulation request")
