package text_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/fasim/internal/presentation/text"
	"github.com/aretw0/fasim/internal/runtime"
	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulate(t *testing.T, table []string, line string) string {
	t.Helper()
	req, err := automaton.ParseRequest(line)
	require.NoError(t, err)
	trace := runtime.Run(automaton.Parse(table), req.Start, req.Inputs)

	var buf bytes.Buffer
	require.NoError(t, text.WriteSimulation(&buf, req, trace))
	return buf.String()
}

func TestWriteSimulation_Parity(t *testing.T) {
	got := simulate(t, []string{"A;0;B;1;A", "B;0;A;1;B"}, "A;0;1;1;0")

	want := strings.Join([]string{
		"",
		"Starting new simulation with description: A;0;1;1;0",
		"Start state = A",
		"  Input = 0; new state = B",
		"  Input = 1; new state = B",
		"  Input = 1; new state = B",
		"  Input = 0; new state = A",
		"Stop state = A",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWriteSimulation_Illegal(t *testing.T) {
	got := simulate(t, []string{"A;x;B"}, "A;y;x")

	want := strings.Join([]string{
		"",
		"Starting new simulation with description: A;y;x",
		"Start state = A",
		"  Input = y; illegal input: terminated",
		"  Input = x; illegal input: terminated",
		"Stop state = None",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestWriteTrace_NoInputs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, text.WriteTrace(&buf, domain.Trace{{Input: "", To: domain.Some("A")}}))

	assert.Equal(t, "Start state = A\nStop state = \n", buf.String())
}

func TestWriteTable(t *testing.T) {
	table := automaton.Parse([]string{"odd;1;even;0;odd", "even;0;even;1;odd", "sink"})

	var buf bytes.Buffer
	require.NoError(t, text.WriteTable(&buf, table))

	want := strings.Join([]string{
		"",
		"Finite Automaton Description",
		"  even transitions: map[0->even,1->odd]",
		"  odd transitions: map[1->even,0->odd]",
		"  sink transitions: map[]",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

type brackets struct{}

func (brackets) State(s string) string   { return "<" + s + ">" }
func (brackets) Illegal(s string) string { return "!" + s + "!" }
func (brackets) Heading(s string) string { return s }

func TestPrinter_Styler(t *testing.T) {
	trace := domain.Trace{
		{Input: "", To: domain.Some("A")},
		{Input: "a", To: domain.Some("B")},
		{Input: "b", To: domain.Undefined},
	}

	var buf bytes.Buffer
	require.NoError(t, text.NewPrinter(&buf, brackets{}).Trace(trace))

	assert.Equal(t, "Start state = <A>\n  Input = a; new state = <B>\n  Input = b; !illegal input: terminated!\nStop state = !None!\n", buf.String())
}
