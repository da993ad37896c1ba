package ports

import (
	"context"

	"github.com/aretw0/fasim/pkg/domain"
)

// TraceStore defines the interface for persisting simulation results.
type TraceStore interface {
	// Save persists the record under record.ID.
	Save(ctx context.Context, record domain.TraceRecord) error

	// Load retrieves a record by ID.
	// Returns domain.ErrTraceNotFound if the record does not exist.
	Load(ctx context.Context, id string) (domain.TraceRecord, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored records, oldest first.
	List(ctx context.Context) ([]string, error)
}
