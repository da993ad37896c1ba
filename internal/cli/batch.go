package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fasim/internal/presentation/text"
	"github.com/aretw0/fasim/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// Simulator is the part of the engine the batch runner uses.
type Simulator interface {
	ParseRequest(line string) (domain.Request, error)
	Simulate(ctx context.Context, req domain.Request) (domain.TraceRecord, error)
}

// BatchOptions configures RunBatch.
type BatchOptions struct {
	// Workers bounds concurrent simulations. Values below 1 mean 1.
	Workers int
	Style   text.Styler
	Logger  *slog.Logger
}

// Summary counts the outcome of a batch.
type Summary struct {
	Runs       int
	Terminated int
}

// RunBatch simulates every non-blank line and prints the results in line order.
// Simulations may run concurrently; output order never depends on scheduling.
func RunBatch(ctx context.Context, sim Simulator, lines []string, w io.Writer, opts BatchOptions) (Summary, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	reqs := make([]domain.Request, 0, len(lines))
	for n, line := range lines {
		req, err := sim.ParseRequest(line)
		if err != nil {
			logger.Debug("Skipping request line", "line", n+1, "error", err)
			continue
		}
		reqs = append(reqs, req)
	}

	records := make([]domain.TraceRecord, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		g.Go(func() error {
			rec, err := sim.Simulate(gctx, req)
			if err != nil {
				return fmt.Errorf("simulation %q: %w", req.Raw, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	printer := text.NewPrinter(w, opts.Style)
	var sum Summary
	for _, rec := range records {
		if err := printer.Simulation(rec.Request, rec.Trace); err != nil {
			return sum, err
		}
		sum.Runs++
		if rec.Trace.Terminated() {
			sum.Terminated++
		}
	}
	logger.Info("Batch finished", "runs", sum.Runs, "terminated", sum.Terminated, "workers", workers)
	return sum, nil
}
