package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/fasim/pkg/domain"
)

// Engine runs simulations and reports them through lifecycle hooks.
// It holds no per-run state, so one Engine can serve concurrent callers.
type Engine struct {
	table  Lookuper
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine over table.
func NewEngine(table Lookuper, opts ...EngineOption) *Engine {
	e := &Engine{
		table:  table,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Simulate executes req and returns its trace.
// The only error is the context's, checked before the run starts.
func (e *Engine) Simulate(ctx context.Context, req domain.Request) (domain.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if e.hooks.OnSimulationStart != nil {
		e.hooks.OnSimulationStart(ctx, &domain.SimulationEvent{
			EventBase: e.event(domain.EventSimulationStart),
			Start:     req.Start,
			Steps:     len(req.Inputs),
		})
	}

	trace := Run(e.table, req.Start, req.Inputs)

	if e.hooks.OnTransition != nil {
		from := domain.Some(req.Start)
		for _, st := range trace.Steps() {
			e.hooks.OnTransition(ctx, &domain.TransitionEvent{
				EventBase: e.event(domain.EventTransition),
				From:      from,
				Input:     st.Input,
				To:        st.To,
			})
			from = st.To
		}
	}

	stop, _ := trace.Stop()
	terminated := trace.Terminated()
	if e.hooks.OnSimulationEnd != nil {
		e.hooks.OnSimulationEnd(ctx, &domain.SimulationEvent{
			EventBase:  e.event(domain.EventSimulationEnd),
			Start:      req.Start,
			Steps:      len(req.Inputs),
			Stop:       stop,
			Terminated: terminated,
		})
	}

	e.logger.Debug("Simulation finished",
		"start", string(req.Start),
		"inputs", len(req.Inputs),
		"stop", stop.String(),
		"terminated", terminated,
	)
	return trace, nil
}

func (e *Engine) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t}
}
