package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/internal/logging"
	"github.com/aretw0/fasim/pkg/adapters/memory"
	"github.com/aretw0/fasim/pkg/adapters/redis"
	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/aretw0/fasim/pkg/ports"
)

// CreateLogger configures the application logger.
// Debug forces debug level; otherwise the configured level applies.
func CreateLogger(cfg *config.Config, debug bool) *slog.Logger {
	level := logging.ParseLevel(cfg.Log.Level)
	if debug {
		level = slog.LevelDebug
	}
	return logging.NewWithWriter(os.Stderr, level, cfg.Log.Format)
}

// ParseOptions maps the parse section of the config to parser options.
func ParseOptions(cfg *config.Config) []automaton.Option {
	var opts []automaton.Option
	if cfg.Parse.TrimSpace {
		opts = append(opts, automaton.WithTrimSpace())
	}
	if cfg.Parse.SharedRow {
		opts = append(opts, automaton.WithSharedRow())
	}
	return opts
}

// OpenStore creates the configured trace store. The returned close function is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.TraceStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store.Driver {
	case "memory":
		return memory.NewStore(), noop, nil
	case "redis":
		rc := cfg.Store.Redis
		store := redis.New(rc.Addr, rc.Password, rc.DB, redis.WithPrefix(rc.Prefix), redis.WithTTL(rc.TTL))
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noop, fmt.Errorf("failed to connect to redis at %s: %w", rc.Addr, err)
		}
		logger.Info("Trace store connected", "driver", "redis", "addr", rc.Addr)
		return store, store.Close, nil
	}
	return nil, noop, nil
}

// createDebugHooks logs every simulation event at debug level.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSimulationStart: func(ctx context.Context, e *domain.SimulationEvent) {
			logger.Debug("simulation_start", "start", string(e.Start), "inputs", e.Steps)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.Debug("transition", "from", e.From.String(), "input", string(e.Input), "to", e.To.String())
		},
		OnSimulationEnd: func(ctx context.Context, e *domain.SimulationEvent) {
			logger.Debug("simulation_end", "stop", e.Stop.String(), "terminated", e.Terminated)
		},
	}
}

// EngineParams collects what CreateEngine needs.
type EngineParams struct {
	TablePath string
	Config    *config.Config
	Logger    *slog.Logger
	Store     ports.TraceStore
	Debug     bool
	Hooks     []domain.LifecycleHooks
}

// CreateEngine initializes an engine with standard CLI conventions.
func CreateEngine(p EngineParams) (*fasim.Engine, error) {
	opts := []fasim.Option{
		fasim.WithLogger(p.Logger),
		fasim.WithParseOptions(ParseOptions(p.Config)...),
	}
	if p.Store != nil {
		opts = append(opts, fasim.WithStore(p.Store))
	}
	if p.Debug {
		opts = append(opts, fasim.WithLifecycleHooks(createDebugHooks(p.Logger)))
	}
	for _, h := range p.Hooks {
		opts = append(opts, fasim.WithLifecycleHooks(h))
	}

	engine, err := fasim.New(p.TablePath, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
