package fasim_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/pkg/adapters/memory"
	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Integration(t *testing.T) {
	repoPath := t.TempDir()
	tablePath := filepath.Join(repoPath, "faparity.txt")
	require.NoError(t, os.WriteFile(tablePath, []byte("odd;0;odd;1;even\neven;0;even;1;odd\n"), 0644))

	engine, err := fasim.New(tablePath)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, engine.Describe(&buf))
	assert.Equal(t, "\nFinite Automaton Description\n  even transitions: map[0->even,1->odd]\n  odd transitions: map[0->odd,1->even]\n", buf.String())

	rec, err := engine.SimulateLine(context.Background(), "even;1;0;1;1;0;x")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Len(t, rec.Trace, 7)

	buf.Reset()
	require.NoError(t, engine.Print(&buf, rec))
	assert.Equal(t, strings.Join([]string{
		"",
		"Starting new simulation with description: even;1;0;1;1;0;x",
		"Start state = even",
		"  Input = 1; new state = odd",
		"  Input = 0; new state = odd",
		"  Input = 1; new state = even",
		"  Input = 1; new state = odd",
		"  Input = 0; new state = odd",
		"  Input = x; illegal input: terminated",
		"Stop state = None",
		"",
	}, "\n"), buf.String())
}

func TestFacade_MissingTable(t *testing.T) {
	_, err := fasim.New(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = fasim.New("")
	assert.Error(t, err)
}

func TestFacade_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		table []string
		line  string
		want  domain.Trace
	}{
		{
			name:  "Walk",
			table: []string{"A;0;B;1;A", "B;0;A;1;B"},
			line:  "A;0;1;1;0",
			want: domain.Trace{
				{Input: "", To: domain.Some("A")},
				{Input: "0", To: domain.Some("B")},
				{Input: "1", To: domain.Some("B")},
				{Input: "1", To: domain.Some("B")},
				{Input: "0", To: domain.Some("A")},
			},
		},
		{
			name:  "Illegal Input",
			table: []string{"A;x;B"},
			line:  "A;y",
			want: domain.Trace{
				{Input: "", To: domain.Some("A")},
				{Input: "y", To: domain.Undefined},
			},
		},
		{
			name:  "Empty Inputs",
			table: []string{"A;x;B"},
			line:  "A",
			want: domain.Trace{
				{Input: "", To: domain.Some("A")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := fasim.NewFromLines(tt.table)
			rec, err := engine.SimulateLine(context.Background(), tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Trace)
		})
	}
}

func TestFacade_StoreAndHooks(t *testing.T) {
	store := memory.NewStore()
	fixed := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	ends := 0

	engine, err := fasim.NewFromReader(strings.NewReader("A ; 0 ; B\n"),
		fasim.WithStore(store),
		fasim.WithParseOptions(automaton.WithTrimSpace()),
		fasim.WithIDGenerator(func() string { return "trace-1" }),
		fasim.WithClock(func() time.Time { return fixed }),
		fasim.WithLifecycleHooks(domain.LifecycleHooks{
			OnSimulationEnd: func(context.Context, *domain.SimulationEvent) { ends++ },
		}),
	)
	require.NoError(t, err)

	rec, err := engine.SimulateLine(context.Background(), "A ; 0")
	require.NoError(t, err)
	assert.Equal(t, domain.Some("B"), rec.Trace[1].To)
	assert.Equal(t, 1, ends)

	stored, err := store.Load(context.Background(), "trace-1")
	require.NoError(t, err)
	assert.Equal(t, fixed, stored.CreatedAt)
	assert.Equal(t, "A ; 0", stored.Request.Raw)
	assert.Same(t, store, engine.Store())
}

type failingStore struct{}

func (failingStore) Save(context.Context, domain.TraceRecord) error { return errors.New("disk full") }
func (failingStore) Load(context.Context, string) (domain.TraceRecord, error) {
	return domain.TraceRecord{}, domain.ErrTraceNotFound
}
func (failingStore) Delete(context.Context, string) error       { return nil }
func (failingStore) List(context.Context) ([]string, error)     { return nil, nil }

func TestFacade_StoreFailure(t *testing.T) {
	engine := fasim.NewFromLines([]string{"A;0;A"}, fasim.WithStore(failingStore{}))

	rec, err := engine.SimulateLine(context.Background(), "A;0")
	assert.ErrorContains(t, err, "disk full")
	assert.Len(t, rec.Trace, 2, "the trace is still returned")
}

func TestFacade_EmptyRequest(t *testing.T) {
	engine := fasim.NewFromLines([]string{"A;0;A"})

	_, err := engine.SimulateLine(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyRequest)
}
