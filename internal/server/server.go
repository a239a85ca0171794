// Package server is the thin HTTP shim around the extraction engine. It
// accepts either a PDF upload or a pre-extracted JSON corpus, builds the
// Corpus, and hands it to the dispatcher. All extraction semantics live
// below this layer.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jdutoit/policyparse/internal/common"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/dispatch"
	"github.com/jdutoit/policyparse/internal/registry"
)

// Server wires the HTTP handlers to the engine.
type Server struct {
	dispatcher *dispatch.Dispatcher
	reg        *registry.Registry
	provider   *corpus.Provider
	cfg        common.ServerConfig
	logger     *slog.Logger
}

func New(d *dispatch.Dispatcher, reg *registry.Registry, p *corpus.Provider, cfg common.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{dispatcher: d, reg: reg, provider: p, cfg: cfg, logger: logger}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/parse", s.withRequestID(s.handleParse))
	mux.HandleFunc("GET /v1/doctypes", s.withRequestID(s.handleDocTypes))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

func (s *Server) withRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		ctx := common.WithRequestID(r.Context(), reqID)
		w.Header().Set("X-Request-ID", reqID)
		next(w, r.WithContext(ctx))
	}
}

// errorStatus maps engine errors onto HTTP codes: input errors are the
// client's fault, everything else is ours.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, common.ErrUnknownDocumentType),
		errors.Is(err, common.ErrEmptyCorpus),
		errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
