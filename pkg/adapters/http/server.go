package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/fasim/internal/presentation/graph"
	"github.com/aretw0/fasim/internal/presentation/text"
	"github.com/aretw0/fasim/internal/runtime"
	"github.com/aretw0/fasim/pkg/automaton"
	"github.com/aretw0/fasim/pkg/domain"
	"github.com/aretw0/fasim/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds simulation request bodies.
const maxBodyBytes = 1 << 20

// Engine defines what the API needs from the simulator.
type Engine interface {
	Table() *automaton.Table
	ParseRequest(line string) (domain.Request, error)
	Simulate(ctx context.Context, req domain.Request) (domain.TraceRecord, error)
}

// Server serves the automaton and its simulations over HTTP.
type Server struct {
	Engine  Engine
	Store   ports.TraceStore
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithStore enables the /traces endpoints.
func WithStore(store ports.TraceStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithMetrics mounts h (usually promhttp.Handler) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok\n")
	})
	r.Get("/automaton", server.GetAutomaton)
	r.Get("/automaton/text", server.GetAutomatonText)
	r.Get("/automaton/graph", server.GetGraph)
	r.Post("/simulate", server.Simulate)
	r.Route("/traces", func(r chi.Router) {
		r.Get("/", server.ListTraces)
		r.Get("/{id}", server.GetTrace)
	})
	if server.Metrics != nil {
		r.Handle("/metrics", server.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TransitionDTO is one transition of a state.
type TransitionDTO struct {
	Symbol domain.Symbol `json:"symbol"`
	To     domain.State  `json:"to"`
}

// StateDTO is one declared state and its transitions, in declaration order.
type StateDTO struct {
	State       domain.State    `json:"state"`
	Transitions []TransitionDTO `json:"transitions"`
}

// AutomatonResponse describes the loaded table.
type AutomatonResponse struct {
	States      []StateDTO             `json:"states"`
	Diagnostics []automaton.Diagnostic `json:"diagnostics"`
}

// SimulateRequest accepts either a raw line or a structured start and inputs.
type SimulateRequest struct {
	Line   string          `json:"line,omitempty"`
	Start  domain.State    `json:"start,omitempty"`
	Inputs []domain.Symbol `json:"inputs,omitempty"`
}

// SimulateResponse is the result of one simulation.
type SimulateResponse struct {
	ID    string       `json:"id"`
	Start domain.State `json:"start"`
	Trace domain.Trace `json:"trace"`
	// Stop is omitted when no input was consumed and null when the run terminated.
	Stop       *domain.Destination `json:"stop,omitempty"`
	Terminated bool                `json:"terminated"`
	Output     string              `json:"output"`
}

// TraceListResponse lists stored trace IDs, oldest first.
type TraceListResponse struct {
	IDs []string `json:"ids"`
}

// GetAutomaton handles the GET /automaton request.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	table := s.Engine.Table()
	resp := AutomatonResponse{
		States:      make([]StateDTO, 0, table.Len()),
		Diagnostics: table.Diagnostics(),
	}
	for _, e := range table.Entries() {
		st := StateDTO{State: e.State, Transitions: make([]TransitionDTO, 0, e.Row.Len())}
		for _, sym := range e.Row.Symbols() {
			to, _ := e.Row.Get(sym).Get()
			st.Transitions = append(st.Transitions, TransitionDTO{Symbol: sym, To: to})
		}
		resp.States = append(resp.States, st)
	}
	if resp.Diagnostics == nil {
		resp.Diagnostics = []automaton.Diagnostic{}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetAutomatonText handles the GET /automaton/text request.
func (s *Server) GetAutomatonText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := text.WriteTable(w, s.Engine.Table()); err != nil {
		s.Logger.Error("Automaton text write failed", "error", err)
	}
}

// GetGraph handles the GET /automaton/graph request.
// An optional ?trace=<request line> (URL-encoded) highlights the states that run
// visits. The overlay run is not stored.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if line := r.URL.Query().Get("trace"); line != "" {
		req, err := s.Engine.ParseRequest(line)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid trace: %v", err), http.StatusBadRequest)
			return
		}
		overlay = graph.OverlayFromTrace(runtime.Run(s.Engine.Table(), req.Start, req.Inputs))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(s.Engine.Table(), overlay))
}

// Simulate handles the POST /simulate request.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Simulate: Invalid request body", "error", err)
		return
	}

	var req domain.Request
	switch {
	case body.Line != "":
		var err error
		req, err = s.Engine.ParseRequest(body.Line)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid line: %v", err), http.StatusBadRequest)
			return
		}
	case body.Start != "":
		req = domain.Request{Start: body.Start, Inputs: body.Inputs}
		if req.Inputs == nil {
			req.Inputs = []domain.Symbol{}
		}
	default:
		http.Error(w, "Either line or start is required", http.StatusBadRequest)
		return
	}

	rec, err := s.Engine.Simulate(r.Context(), req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Simulate error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Simulate failed", "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, toResponse(rec))
}

// ListTraces handles the GET /traces request.
func (s *Server) ListTraces(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "Trace store disabled", http.StatusNotImplemented)
		return
	}
	ids, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("List traces failed", "error", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, TraceListResponse{IDs: ids})
}

// GetTrace handles the GET /traces/{id} request.
func (s *Server) GetTrace(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		http.Error(w, "Trace store disabled", http.StatusNotImplemented)
		return
	}
	rec, err := s.Store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrTraceNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Load trace failed", "error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, toResponse(rec))
}

func toResponse(rec domain.TraceRecord) SimulateResponse {
	resp := SimulateResponse{
		ID:         rec.ID,
		Start:      rec.Request.Start,
		Trace:      rec.Trace,
		Terminated: rec.Trace.Terminated(),
	}
	if stop, ok := rec.Trace.Stop(); ok {
		resp.Stop = &stop
	}

	var out strings.Builder
	_ = text.WriteTrace(&out, rec.Trace)
	resp.Output = out.String()
	return resp
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
