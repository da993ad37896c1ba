package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/fasim/pkg/domain"
)

// Store implements ports.TraceStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.TraceRecord
	seq  map[string]uint64
	next uint64
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.TraceRecord),
		seq:  make(map[string]uint64),
	}
}

// Save persists the record in memory.
func (s *Store) Save(ctx context.Context, record domain.TraceRecord) error {
	// Copy slices so the caller can't mutate stored records
	record = clone(record)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.ID] = record
	s.next++
	s.seq[record.ID] = s.next
	return nil
}

// Load retrieves the record from memory.
func (s *Store) Load(ctx context.Context, id string) (domain.TraceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[id]
	if !ok {
		return domain.TraceRecord{}, domain.ErrTraceNotFound
	}
	return clone(record), nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	delete(s.seq, id)
	return nil
}

// List returns stored IDs ordered by creation time, then by save order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.data[ids[i]], s.data[ids[j]]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return s.seq[ids[i]] < s.seq[ids[j]]
	})
	return ids, nil
}

func clone(r domain.TraceRecord) domain.TraceRecord {
	r.Request.Inputs = append([]domain.Symbol(nil), r.Request.Inputs...)
	r.Trace = append(domain.Trace(nil), r.Trace...)
	return r
}
