package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSimulationStart EventType = "simulation_start"
	EventTransition      EventType = "transition"
	EventSimulationEnd   EventType = "simulation_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SimulationEvent marks the start or end of a run.
type SimulationEvent struct {
	EventBase
	Start State `json:"start"`
	// Steps is the number of inputs in the request.
	Steps int `json:"steps"`
	// Stop is only meaningful on EventSimulationEnd.
	Stop       Destination `json:"stop"`
	Terminated bool        `json:"terminated,omitempty"`
}

// TransitionEvent is emitted once per consumed input.
type TransitionEvent struct {
	EventBase
	From  Destination `json:"from"`
	Input Symbol      `json:"input"`
	To    Destination `json:"to"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnSimulationStart func(context.Context, *SimulationEvent)
	OnTransition      func(context.Context, *TransitionEvent)
	OnSimulationEnd   func(context.Context, *SimulationEvent)
}

// Merge returns hooks that call h first and then other, for every callback set on either.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnSimulationStart: chain(h.OnSimulationStart, other.OnSimulationStart),
		OnTransition:      chain(h.OnTransition, other.OnTransition),
		OnSimulationEnd:   chain(h.OnSimulationEnd, other.OnSimulationEnd),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
