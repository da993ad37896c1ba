package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fasim/internal/config"
	"github.com/aretw0/fasim/internal/presentation/text"
	"github.com/aretw0/fasim/internal/presentation/tui"
	"github.com/aretw0/fasim/pkg/adapters/file"
	"github.com/aretw0/fasim/pkg/domain"
)

// SessionOptions configures a batch session.
type SessionOptions struct {
	TablePath    string
	RequestsPath string
	Config       *config.Config
	Logger       *slog.Logger
	Debug        bool

	// In and Out drive the file prompts. When In is nil, missing paths fall
	// back to the configured defaults without prompting.
	In  io.Reader
	Out io.Writer

	// Style decorates the console output. Nil means plain text.
	Style  text.Styler
	Banner bool
	Hooks  []domain.LifecycleHooks
}

// RunSession resolves the input files, prints the automaton description and
// simulates every request line.
func RunSession(ctx context.Context, opts SessionOptions) (Summary, error) {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	logger := opts.Logger
	if logger == nil {
		logger = CreateLogger(cfg, opts.Debug)
	}

	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Banner {
		tui.PrintBanner(opts.Out)
	}

	tablePath, requestsPath, err := resolvePaths(opts, cfg)
	if err != nil {
		return Summary{}, err
	}

	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return Summary{}, err
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Warn("Failed to close trace store", "err", cerr)
		}
	}()

	engine, err := CreateEngine(EngineParams{
		TablePath: tablePath,
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Debug:     opts.Debug,
		Hooks:     opts.Hooks,
	})
	if err != nil {
		return Summary{}, err
	}

	lines, err := file.ReadLines(ctx, requestsPath)
	if err != nil {
		return Summary{}, fmt.Errorf("error reading requests: %w", err)
	}

	if err := text.NewPrinter(opts.Out, opts.Style).Table(engine.Table()); err != nil {
		return Summary{}, err
	}
	return RunBatch(ctx, engine, lines, opts.Out, BatchOptions{
		Workers: cfg.Workers,
		Style:   opts.Style,
		Logger:  logger,
	})
}

func resolvePaths(opts SessionOptions, cfg *config.Config) (string, string, error) {
	tablePath, requestsPath := opts.TablePath, opts.RequestsPath
	if opts.In == nil {
		if tablePath == "" {
			tablePath = cfg.Table
		}
		if requestsPath == "" {
			requestsPath = cfg.Inputs
		}
		return tablePath, requestsPath, nil
	}

	p := NewPrompter(opts.In, opts.Out)
	var err error
	if tablePath == "" {
		if tablePath, err = p.AskFile("Enter the name of the automaton file ", cfg.Table); err != nil {
			return "", "", fmt.Errorf("automaton file: %w", err)
		}
	}
	if requestsPath == "" {
		if requestsPath, err = p.AskFile("Enter the name of the input file ", cfg.Inputs); err != nil {
			return "", "", fmt.Errorf("input file: %w", err)
		}
	}
	return tablePath, requestsPath, nil
}
