package ports

import "context"

// TableLoader defines how the simulator retrieves its input text.
// This allows the source (file, memory, network) to be decoupled.
type TableLoader interface {
	// TableLines returns the raw lines of the automaton description.
	TableLines(ctx context.Context) ([]string, error)

	// RequestLines returns the raw lines of the simulation descriptions.
	RequestLines(ctx context.Context) ([]string, error)
}
