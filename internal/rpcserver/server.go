// Package rpcserver exposes the dispatcher's operations over a minimal
// JSON-over-HTTP transport. The original RPC surface is gRPC; this module
// has no generated protobuf stubs to ground a hand-written gRPC client on,
// so the transport is adapted from the teacher's own net/http server instead
// (see DESIGN.md). The method set and semantics are unchanged.
package rpcserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/falleng0d/hidremote/internal/dispatch"
	"github.com/falleng0d/hidremote/internal/hidkey"
	"github.com/falleng0d/hidremote/internal/hotkey"
)

// ConfigSource is the subset of the config store the RPC surface needs.
type ConfigSource interface {
	CursorSpeed() float64
	CursorAcceleration() float64
	SetCursorSpeed(float64) error
	SetCursorAcceleration(float64) error
}

// Server serves the PressKey/PressHotkey/PressMouseKey/MoveMouse/Ping/
// GetConfig/SetConfig RPC surface.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	dispatcher *dispatch.Dispatcher
	config     ConfigSource
	log        zerolog.Logger
}

// New constructs a Server bound to addr, dispatching through d and reading/
// writing config through cfg.
func New(addr string, d *dispatch.Dispatcher, cfg ConfigSource, log zerolog.Logger) *Server {
	s := &Server{dispatcher: d, config: cfg, log: log.With().Str("component", "rpcserver").Logger()}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/press-key", s.handlePressKey)
	mux.HandleFunc("/v1/press-hotkey", s.handlePressHotkey)
	mux.HandleFunc("/v1/press-mouse-key", s.handlePressMouseKey)
	mux.HandleFunc("/v1/move-mouse", s.handleMoveMouse)
	mux.HandleFunc("/v1/ping", s.handlePing)
	mux.HandleFunc("/v1/get-config", s.handleGetConfig)
	mux.HandleFunc("/v1/set-config", s.handleSetConfig)

	// At most 10 RPC calls are handled at once; further calls wait for a slot.
	slots := make(chan struct{}, 10)
	bounded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slots <- struct{}{}
		defer func() { <-slots }()
		mux.ServeHTTP(w, r)
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      bounded,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Start binds the listener and serves in a background goroutine.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("rpc server stopped")
		}
	}()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("rpc server listening")
	return nil
}

// Stop gracefully shuts the server down, waiting at most 2 seconds.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) requestLogger(r *http.Request) zerolog.Logger {
	return s.log.With().Str("request_id", uuid.NewString()).Str("method", r.Method).Str("path", r.URL.Path).Logger()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(log zerolog.Logger, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, hidkey.ErrDeviceUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, hidkey.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, hidkey.ErrNotInitialized),
		errors.Is(err, hidkey.ErrValueOutOfRange),
		errors.Is(err, hidkey.ErrRolloverExceeded),
		errors.Is(err, hidkey.ErrInvalidModifier),
		errors.Is(err, hidkey.ErrUnknownKey),
		errors.Is(err, hidkey.ErrMalformedHotkey):
		status = http.StatusBadRequest
	}
	log.Error().Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

func (s *Server) handlePressKey(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	req, err := decode[pressKeyRequest](r)
	if err != nil {
		writeError(log, w, err)
		return
	}
	action := hidkey.ParseActionType(req.Type)
	if err := s.dispatcher.PressKey(req.ID, action, req.Options.toDomain()); err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Message: "Ok"})
}

func (s *Server) handlePressHotkey(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	req, err := decode[pressHotkeyRequest](r)
	if err != nil {
		writeError(log, w, err)
		return
	}

	var steps []hidkey.HotkeyStep
	if req.Hotkey != "" {
		steps, err = hotkey.Parse(req.Hotkey)
		if err != nil {
			writeError(log, w, err)
			return
		}
	} else {
		for _, sw := range req.Steps {
			steps = append(steps, hidkey.HotkeyStep{
				KeyID:   sw.KeyID,
				Action:  hidkey.ParseActionType(sw.Type),
				WaitMs:  sw.WaitMs,
				SpeedMs: sw.SpeedMs,
			})
		}
	}

	action := hidkey.ParseActionType(req.Type)
	if err := s.dispatcher.PressHotkey(steps, action, req.Options.toDomain(), req.Speed); err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Message: "Ok"})
}

func (s *Server) handlePressMouseKey(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	req, err := decode[pressMouseKeyRequest](r)
	if err != nil {
		writeError(log, w, err)
		return
	}
	action := hidkey.ParseActionType(req.Type)
	if err := s.dispatcher.PressMouseKey(req.ID, action); err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Message: "Ok"})
}

func (s *Server) handleMoveMouse(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	req, err := decode[moveMouseRequest](r)
	if err != nil {
		writeError(log, w, err)
		return
	}
	if err := s.dispatcher.MoveMouse(r.Context(), req.X, req.Y, req.VWheel, req.HWheel); err != nil {
		writeError(log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Message: "Ok"})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Message: "Ok"})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configWire{
		CursorSpeed:        s.config.CursorSpeed(),
		CursorAcceleration: s.config.CursorAcceleration(),
	})
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	req, err := decode[setConfigRequest](r)
	if err != nil {
		writeError(log, w, err)
		return
	}
	if err := s.config.SetCursorSpeed(req.CursorSpeed); err != nil {
		writeError(log, w, err)
		return
	}
	if err := s.config.SetCursorAcceleration(req.CursorAcceleration); err != nil {
		writeError(log, w, err)
		return
	}
	s.handleGetConfig(w, r)
}
