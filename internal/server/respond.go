package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kreyol-ai/ht-lang-nlp/internal/logger"
)

// apiError is an error with an HTTP status and a client-safe message.
type apiError struct {
	status int
	msg    string
	err    error
}

func newAPIError(status int, msg string, err error) *apiError {
	return &apiError{status: status, msg: msg, err: err}
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.err }

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes err as a JSON error body. Errors without a status are 500s
// and their detail is logged, not returned. 5xx errors are logged with the
// stack recorded by github.com/pkg/errors, when there is one.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	var ae *apiError
	if errors.As(err, &ae) {
		status, msg = ae.status, ae.msg
	}

	log := logger.C(r.Context(), s.log)
	if status >= http.StatusInternalServerError {
		log.Error().Stack().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, status, errorResponse{Error: msg, RequestID: logger.RequestID(r.Context())})
}
