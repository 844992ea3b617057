package server

import (
	"net/http"

	"github.com/kreyol-ai/ht-lang-nlp/normalize"
	"github.com/kreyol-ai/ht-lang-nlp/numtext"
)

type numbersRequest struct {
	Value *int64 `json:"value" validate:"required"`
}

type numbersResponse struct {
	Value int64  `json:"value"`
	Words string `json:"words"`
}

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Text string `json:"text"`
}

type cleanRequest struct {
	Text    string `json:"text"`
	Cleaner string `json:"cleaner" validate:"cleaner"`
}

type cleanResponse struct {
	Text    string `json:"text"`
	Cleaner string `json:"cleaner"`
}

type phonemesResponse struct {
	Phonemes string `json:"phonemes"`
}

func (s *Server) handleNumbers(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[numbersRequest](w, r, s.maxBody)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	words, err := numtext.Convert(*req.Value)
	if err != nil {
		s.fail(w, r, newAPIError(http.StatusUnprocessableEntity, err.Error(), err))
		return
	}
	writeJSON(w, http.StatusOK, numbersResponse{Value: *req.Value, Words: words})
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[textRequest](w, r, s.maxBody)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: numtext.ExpandNumbers(req.Text)})
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[cleanRequest](w, r, s.maxBody)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	name := req.Cleaner
	if name == "" {
		name = s.cleaner
	}
	out, err := normalize.Clean(name, req.Text)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cleanResponse{Text: out, Cleaner: name})
}

func (s *Server) handlePhonemes(w http.ResponseWriter, r *http.Request) {
	if s.phonemizer == nil {
		s.fail(w, r, newAPIError(http.StatusServiceUnavailable, "phonemizer not configured", nil))
		return
	}
	req, err := decodeJSON[textRequest](w, r, s.maxBody)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := normalize.Phonemes(r.Context(), s.phonemizer, req.Text)
	if err != nil {
		s.fail(w, r, newAPIError(http.StatusBadGateway, "phonemizer failed", err))
		return
	}
	writeJSON(w, http.StatusOK, phonemesResponse{Phonemes: out})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
