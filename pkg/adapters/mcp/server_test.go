package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(fasim.NewFromLines([]string{"A;0;B;1;A", "B;0;A;1;B"}))
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content type %T", res.Content[0])
	return ""
}

func TestHandleDescribe(t *testing.T) {
	s := newTestServer()

	res, err := s.handleDescribe(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Finite Automaton Description\n  A transitions: map[0->B,1->A]\n  B transitions: map[0->A,1->B]\n", textOf(t, res))
}

func TestHandleSimulate_Line(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleSimulate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"line": "A;0;1;z",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Len(t, resp.Trace, 4)
	assert.Equal(t, "None", resp.Stop)
	assert.True(t, resp.Terminated)
	assert.Contains(t, resp.Output, "  Input = z; illegal input: terminated\n")
}

func TestHandleSimulate_Structured(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleSimulate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"start":  "B",
		"inputs": `["0","0"]`,
	})
	require.NoError(t, err)
	assert.Equal(t, "B", resp.Stop)
	assert.Equal(t, domain.Some("A"), resp.Trace[1].To)

	resp, err = s.handleSimulate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"start": "A",
	})
	require.NoError(t, err)
	assert.Equal(t, "", resp.Stop)
	assert.Len(t, resp.Trace, 1)
}

func TestHandleSimulate_Invalid(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"Missing Everything", map[string]interface{}{}},
		{"Blank Line", map[string]interface{}{"line": "  "}},
		{"Bad Inputs", map[string]interface{}{"start": "A", "inputs": "not-json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleSimulate(context.Background(), mcp.CallToolRequest{}, tt.args)
			assert.Error(t, err)
		})
	}
}

func TestSSEHandler_Preflight(t *testing.T) {
	h := newTestServer().SSEHandler("http://localhost:0")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/message", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
