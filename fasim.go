package fasim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/internal/presentation/text"
	"github.com/aretw0/fasim/internal/runtime"
	"github.com/aretw0/fasim/pkg/adapters/file"
	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/aretw0/fasim/pkg/ports"
	"github.com/google/uuid"
)

// Engine is the high-level entry point for the fasim library.
// It owns one immutable automaton and runs simulations against it.
type Engine struct {
	table     *automaton.Table
	runtime   *runtime.Engine
	store     ports.TraceStore
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	parseOpts []automaton.Option
	newID     func() string
	now       func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore persists every simulation result in store.
func WithStore(store ports.TraceStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithParseOptions configures how table and request lines are parsed.
func WithParseOptions(opts ...automaton.Option) Option {
	return func(e *Engine) {
		e.parseOpts = append(e.parseOpts, opts...)
	}
}

// WithIDGenerator replaces the random trace ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		e.newID = gen
	}
}

// WithClock overrides the time source for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New reads the table at tablePath and initializes an Engine.
func New(tablePath string, opts ...Option) (*Engine, error) {
	if tablePath == "" {
		return nil, fmt.Errorf("table path is required")
	}
	lines, err := file.ReadLines(context.Background(), tablePath)
	if err != nil {
		return nil, err
	}
	return NewFromLines(lines, opts...), nil
}

// NewFromLoader reads the table through loader.
func NewFromLoader(ctx context.Context, loader ports.TableLoader, opts ...Option) (*Engine, error) {
	lines, err := loader.TableLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return NewFromLines(lines, opts...), nil
}

// NewFromReader parses the table from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	eng := newEngine(opts)
	table, err := automaton.ParseReader(r, eng.tableParseOpts()...)
	if err != nil {
		return nil, err
	}
	eng.init(table)
	return eng, nil
}

// NewFromLines parses the given table lines.
func NewFromLines(lines []string, opts ...Option) *Engine {
	eng := newEngine(opts)
	eng.init(automaton.Parse(lines, eng.tableParseOpts()...))
	return eng
}

func newEngine(opts []Option) *Engine {
	eng := &Engine{
		logger: logging.NewNop(),
		newID:  func() string { return uuid.NewString() },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

func (e *Engine) tableParseOpts() []automaton.Option {
	return append([]automaton.Option{automaton.WithLogger(e.logger)}, e.parseOpts...)
}

func (e *Engine) init(table *automaton.Table) {
	e.table = table
	e.runtime = runtime.NewEngine(table,
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger),
	)
	e.logger.Info("Automaton loaded", "states", table.Len(), "diagnostics", len(table.Diagnostics()))
}

// Table returns the parsed automaton.
func (e *Engine) Table() *automaton.Table {
	return e.table
}

// Store returns the configured trace store, or nil.
func (e *Engine) Store() ports.TraceStore {
	return e.store
}

// Describe writes the automaton description, states in alphabetical order.
func (e *Engine) Describe(w io.Writer) error {
	return text.WriteTable(w, e.table)
}

// ParseRequest parses a simulation line with the engine's parse options.
func (e *Engine) ParseRequest(line string) (domain.Request, error) {
	return automaton.ParseRequest(line, e.parseOpts...)
}

// Simulate runs req and returns the result as a record.
// When a store is configured the record is saved before returning.
func (e *Engine) Simulate(ctx context.Context, req domain.Request) (domain.TraceRecord, error) {
	trace, err := e.runtime.Simulate(ctx, req)
	if err != nil {
		return domain.TraceRecord{}, err
	}

	rec := domain.TraceRecord{
		ID:        e.newID(),
		Request:   req,
		Trace:     trace,
		CreatedAt: e.now().UTC(),
	}
	if e.store != nil {
		if err := e.store.Save(ctx, rec); err != nil {
			return rec, fmt.Errorf("failed to save trace %s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

// SimulateLine parses line as a request and runs it.
func (e *Engine) SimulateLine(ctx context.Context, line string) (domain.TraceRecord, error) {
	req, err := e.ParseRequest(line)
	if err != nil {
		return domain.TraceRecord{}, err
	}
	return e.Simulate(ctx, req)
}

// Print writes rec in the console format, header line included.
func (e *Engine) Print(w io.Writer, rec domain.TraceRecord) error {
	return text.WriteSimulation(w, rec.Request, rec.Trace)
}
