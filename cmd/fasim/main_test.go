package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fasim version "))
}

func TestDescribeCommand(t *testing.T) {
	table := writeFile(t, "table.txt", "B;0;A;1;B\nA;0;B;1;A\n")

	out, err := execute(t, "describe", table)
	require.NoError(t, err)
	assert.Equal(t, "\nFinite Automaton Description\n"+
		"  A transitions: map[0->B,1->A]\n"+
		"  B transitions: map[0->A,1->B]\n", out)

	out, err = execute(t, "describe", table, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "states:")
	assert.Contains(t, out, "name: A")

	_, err = execute(t, "describe", table, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
	_, err = execute(t, "describe", table, "--format", "text")
	require.NoError(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", writeFile(t, "ok.txt", "A;0;B\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "Table is valid: 1 state(s)")

	out, err = execute(t, "validate", writeFile(t, "bad.txt", "A;0;B;1\nB;x;None\n"))
	require.Error(t, err)
	assert.Contains(t, out, "has no destination")
	assert.Contains(t, out, "is reserved")
}

func TestGraphCommand(t *testing.T) {
	table := writeFile(t, "table.txt", "A;0;B;1;A\nB;0;A;1;B\n")

	out, err := execute(t, "graph", table, "--trace", "A;0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR"))

	_, err = execute(t, "graph", table, "--trace", "")
	require.NoError(t, err)
}

func TestRunCommand(t *testing.T) {
	table := writeFile(t, "table.txt", "A;0;B;1;A\nB;0;A;1;B\n")
	inputs := writeFile(t, "inputs.txt", "A;0;x;1\n")

	out, err := execute(t, "run", table, inputs, "--no-prompt")
	require.NoError(t, err)
	assert.Contains(t, out, "Starting new simulation with description: A;0;x;1\n")
	assert.Contains(t, out, "  Input = x; illegal input: terminated\n  Input = 1; illegal input: terminated\nStop state = None\n")
}

func TestMissingTable(t *testing.T) {
	_, err := execute(t, "describe", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
