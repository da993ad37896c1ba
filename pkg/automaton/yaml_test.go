package automaton_test

import (
	"testing"

	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(automaton.Parse([]string{"B;1;A", "A;1;B;0;A"}))
	require.NoError(t, err)

	var doc struct {
		States []struct {
			Name        string `yaml:"name"`
			Transitions []struct {
				Input string `yaml:"input"`
				To    string `yaml:"to"`
			} `yaml:"transitions"`
		} `yaml:"states"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.States, 2)
	assert.Equal(t, "A", doc.States[0].Name)
	require.Len(t, doc.States[0].Transitions, 2)
	assert.Equal(t, "1", doc.States[0].Transitions[0].Input)
	assert.Equal(t, "B", doc.States[0].Transitions[0].To)
	assert.Equal(t, "0", doc.States[0].Transitions[1].Input)
	assert.Equal(t, "B", doc.States[1].Name)
	assert.Contains(t, string(out), `input: "1"`)
}

func TestParseYAML_RoundTrip(t *testing.T) {
	original := automaton.Parse([]string{"A;0;B;1;A", "B;0;A;1;B", "C"})
	out, err := yaml.Marshal(original)
	require.NoError(t, err)

	decoded, err := automaton.ParseYAML(out)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
	assert.Equal(t, domain.Some("A"), decoded.Lookup("B", "0"))
}

func TestParseYAML_Errors(t *testing.T) {
	_, err := automaton.ParseYAML([]byte("states: [{transitions: []}]"))
	assert.ErrorContains(t, err, "has no name")

	_, err = automaton.ParseYAML([]byte("states: [{name: 'A;B'}]"))
	assert.ErrorContains(t, err, "contains")

	_, err = automaton.ParseYAML([]byte("states: {"))
	assert.Error(t, err)
}

func TestParseYAML_ReservedNone(t *testing.T) {
	table, err := automaton.ParseYAML([]byte("states:\n  - name: A\n    transitions:\n      - {input: x, to: None}\n"))
	require.NoError(t, err)
	assert.False(t, table.Lookup("A", "x").Defined())
	require.Len(t, table.Diagnostics(), 1)
	assert.Equal(t, automaton.ReservedState, table.Diagnostics()[0].Kind)
}
