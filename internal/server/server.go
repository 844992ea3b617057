// Package server exposes the numeral and cleaning functions over HTTP.
//
// Routes:
//
//	POST /v1/numbers   {"value": 21}        -> {"value": 21, "words": "ven-en"}
//	POST /v1/expand    {"text": "..."}      -> {"text": "..."}
//	POST /v1/clean     {"text", "cleaner"}  -> {"text", "cleaner"}
//	POST /v1/phonemes  {"text": "..."}      -> {"phonemes": "..."}
//	GET  /health                            -> {"status": "ok"}
//
// Every response carries an X-Request-ID header.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kreyol-ai/ht-lang-nlp/internal/config"
	"github.com/kreyol-ai/ht-lang-nlp/internal/logger"
	"github.com/kreyol-ai/ht-lang-nlp/normalize"
)

// Server is the HTTP server for the htnlp API.
type Server struct {
	cleaner    string
	maxBody    int64
	phonemizer normalize.Phonemizer
	log        *logger.Logger
	srv        *http.Server
}

// New creates a server from cfg. A nil phonemizer disables /v1/phonemes.
func New(cfg *config.Config, ph normalize.Phonemizer, log *logger.Logger) *Server {
	s := &Server{
		cleaner:    cfg.Cleaner,
		maxBody:    cfg.Server.MaxBodyBytes,
		phonemizer: ph,
		log:        log,
	}
	s.srv = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           s.Handler(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}
	return s
}

// Handler returns the routed handler with middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.log))
	r.Use(s.recoverJSON)
	r.Use(middleware.CleanPath)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/numbers", s.handleNumbers)
		r.Post("/expand", s.handleExpand)
		r.Post("/clean", s.handleClean)
		r.Post("/phonemes", s.handlePhonemes)
	})
	r.Get("/health", s.handleHealth)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, newAPIError(http.StatusNotFound, "route not found", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, newAPIError(http.StatusMethodNotAllowed, "method not allowed", nil))
	})
	return r
}

// Start listens on the configured address and blocks until Stop is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.srv.Addr).Str("cleaner", s.cleaner).Msg("starting server")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
