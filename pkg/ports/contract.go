package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTraceStoreContract runs a suite of tests to verify that a TraceStore implementation
// adheres to the defined interface contract.
func RunTraceStoreContract(t *testing.T, store TraceStore) {
	ctx := context.Background()
	prefix := "contract-" + time.Now().Format("20060102150405")

	record := func(id string, created time.Time) domain.TraceRecord {
		return domain.TraceRecord{
			ID: id,
			Request: domain.Request{
				Raw:    "A;0;9",
				Start:  "A",
				Inputs: []domain.Symbol{"0", "9"},
			},
			Trace: domain.Trace{
				{Input: "", To: domain.Some("A")},
				{Input: "0", To: domain.Some("B")},
				{Input: "9", To: domain.Undefined},
			},
			CreatedAt: created,
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		id := prefix + "-save"
		rec := record(id, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

		require.NoError(t, store.Save(ctx, rec), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, rec.Request, loaded.Request)
		assert.Equal(t, rec.Trace, loaded.Trace)
		assert.True(t, rec.CreatedAt.Equal(loaded.CreatedAt))

		stop, ok := loaded.Trace.Stop()
		assert.True(t, ok)
		assert.False(t, stop.Defined(), "undefined destinations survive persistence")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, prefix+"-missing")
		assert.ErrorIs(t, err, domain.ErrTraceNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		id := prefix + "-delete"
		require.NoError(t, store.Save(ctx, record(id, time.Now())))

		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrTraceNotFound, "Load after Delete should return ErrTraceNotFound")
		assert.NoError(t, store.Delete(ctx, id), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := prefix + "-1"
		id2 := prefix + "-2"
		base := time.Now()
		require.NoError(t, store.Save(ctx, record(id2, base.Add(time.Second))))
		require.NoError(t, store.Save(ctx, record(id1, base)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)

		pos := map[string]int{}
		for i, id := range ids {
			pos[id] = i
		}
		require.Contains(t, pos, id1)
		require.Contains(t, pos, id2)
		assert.Less(t, pos[id1], pos[id2], "List is ordered by creation time")
	})
}
