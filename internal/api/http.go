package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"suborbital-sim/internal/sim"
	"suborbital-sim/internal/telemetry"
)

// Engine is the part of sim.Engine the HTTP feed needs.
type Engine interface {
	Constants() sim.Constants
	Submit(cmd sim.Command)
	GetState(ctx context.Context) (sim.Snapshot, error)
	Subscribe(ctx context.Context) (<-chan sim.Snapshot, func())
}

type Server struct {
	eng    Engine
	mux    *http.ServeMux
	logger *slog.Logger
}

func NewServer(eng Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{eng: eng, mux: http.NewServeMux(), logger: logger}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)
	s.mux.HandleFunc("/state", s.state)
	s.mux.HandleFunc("/constants", s.constants)
	s.mux.HandleFunc("/panel", s.panel)

	s.mux.HandleFunc("/command/start", s.command(func() sim.Command { return sim.StartCommand{At: time.Now()} }))
	s.mux.HandleFunc("/command/reset", s.command(func() sim.Command { return sim.ResetCommand{At: time.Now()} }))
	s.mux.HandleFunc("/command/trigger", s.command(func() sim.Command { return sim.TriggerCommand{At: time.Now()} }))

	s.mux.HandleFunc("/stream", s.streamSSE)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (sim.Snapshot, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	st, err := s.eng.GetState(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestTimeout)
		return sim.Snapshot{}, false
	}
	return st, true
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	if st, ok := s.snapshot(w, r); ok {
		writeJSON(w, st)
	}
}

func (s *Server) constants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.eng.Constants())
}

func (s *Server) panel(w http.ResponseWriter, r *http.Request) {
	st, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(strings.Join(telemetry.Panel(st, s.eng.Constants()), "\n") + "\n"))
}

func (s *Server) command(build func() sim.Command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		cmd := build()
		s.eng.Submit(cmd)
		s.logger.Debug("command accepted", "type", cmd.Type(), "remote", r.RemoteAddr)
		writeJSON(w, map[string]any{"status": "accepted", "type": cmd.Type()})
	}
}

func (s *Server) streamSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ctx := r.Context()
	ch, unsub := s.eng.Subscribe(ctx)
	defer unsub()

	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-ch:
			if !ok {
				return
			}
			b, err := json.Marshal(st)
			if err != nil {
				s.logger.Error("encoding snapshot", "error", err)
				return
			}
			fmt.Fprintf(w, "event: state\n")
			fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
