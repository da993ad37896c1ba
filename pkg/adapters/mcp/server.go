package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fasim"
	"github.com/aretw0/fasim/internal/presentation/text"
	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AutomatonURI is the resource exposing the table description.
const AutomatonURI = "fasim://automaton"

// SimulateResponse is the structured result of the simulate tool.
type SimulateResponse struct {
	ID         string       `json:"id" jsonschema_description:"Identifier of the stored trace"`
	Trace      domain.Trace `json:"trace" jsonschema_description:"Ordered (input, state) pairs; the first pair is the start state"`
	Stop       string       `json:"stop" jsonschema_description:"Stop state; None if an input was illegal, empty if there were no inputs"`
	Terminated bool         `json:"terminated" jsonschema_description:"Indicates if an input had no transition"`
	Output     string       `json:"output" jsonschema_description:"Console rendering of the run"`
}

// Engine defines what the MCP server needs from the simulator.
type Engine interface {
	Table() *automaton.Table
	ParseRequest(line string) (domain.Request, error)
	Simulate(ctx context.Context, req domain.Request) (domain.TraceRecord, error)
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the MCP Server.
type Option func(*Server)

// WithLogger sets the logger used by the SSE transport.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("fasim-mcp", strings.TrimSpace(fasim.Version)),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// SSEHandler returns the routes of the SSE transport: /sse and /message.
func (s *Server) SSEHandler(baseURL string) http.Handler {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/message", sseServer.MessageHandler())
	return r
}

// ServeSSE serves the SSE transport on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.SSEHandler(fmt.Sprintf("http://localhost:%d", port)),
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MCPServer exposes the underlying server, e.g. for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	// TOOL: describe_automaton
	s.mcpServer.AddTool(mcp.NewTool("describe_automaton",
		mcp.WithDescription("Describe the finite automaton: every state and its transitions, sorted by state name."),
	), s.handleDescribe)

	// TOOL: simulate
	simulateTool := mcp.NewTool("simulate",
		mcp.WithDescription("Run the automaton from a start state over a sequence of inputs."),
		mcp.WithString("line", mcp.Description("Simulation description: start state followed by inputs, separated by semicolons (e.g. 'A;0;1')")),
		mcp.WithString("start", mcp.Description("Start state (used when line is omitted)")),
		mcp.WithString("inputs", mcp.Description("JSON array of input symbols (used when line is omitted)")),
		mcp.WithOutputSchema[SimulateResponse](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := text.WriteTable(&buf, s.engine.Table()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	return mcp.NewToolResultText(strings.TrimPrefix(buf.String(), "\n")), nil
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResponse, error) {
	req, err := s.buildRequest(args)
	if err != nil {
		return SimulateResponse{}, err
	}

	rec, err := s.engine.Simulate(ctx, req)
	if err != nil {
		return SimulateResponse{}, fmt.Errorf("simulate failed: %w", err)
	}

	var out bytes.Buffer
	_ = text.WriteTrace(&out, rec.Trace)

	resp := SimulateResponse{
		ID:         rec.ID,
		Trace:      rec.Trace,
		Terminated: rec.Trace.Terminated(),
		Output:     out.String(),
	}
	if stop, ok := rec.Trace.Stop(); ok {
		resp.Stop = stop.String()
	}
	return resp, nil
}

func (s *Server) buildRequest(args map[string]interface{}) (domain.Request, error) {
	if line, _ := args["line"].(string); line != "" {
		req, err := s.engine.ParseRequest(line)
		if err != nil {
			return domain.Request{}, fmt.Errorf("invalid line: %w", err)
		}
		return req, nil
	}

	start, _ := args["start"].(string)
	if start == "" {
		return domain.Request{}, fmt.Errorf("either line or start is required")
	}
	req := domain.Request{Start: domain.State(start), Inputs: []domain.Symbol{}}
	if inputs, ok := args["inputs"].(string); ok && inputs != "" {
		if err := json.Unmarshal([]byte(inputs), &req.Inputs); err != nil {
			return domain.Request{}, fmt.Errorf("inputs must be a JSON array of strings: %w", err)
		}
	}
	return req, nil
}

func (s *Server) registerResources() {
	// EXPOSE: fasim://automaton
	s.mcpServer.AddResource(mcp.NewResource(AutomatonURI, "Finite Automaton Description",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		var buf bytes.Buffer
		if err := text.WriteTable(&buf, s.engine.Table()); err != nil {
			return nil, fmt.Errorf("failed to describe automaton: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      AutomatonURI,
				MIMEType: "text/plain",
				Text:     buf.String(),
			},
		}, nil
	})
}
