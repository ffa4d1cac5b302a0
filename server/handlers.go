package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/lixenwraith/wikijump/content"
	"github.com/lixenwraith/wikijump/layout"
)

// handleLayout resolves ?id= and returns the laid-out page
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	page, ok := s.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toPage(page))
}

// handleSections returns the culling sections of ?id= without the words
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	page, ok := s.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSections(page))
}

// handleLayoutMarkdown lays out a markdown document posted as the request body
func (s *Server) handleLayoutMarkdown(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "upload.md"
	}
	parser := &content.MarkdownParser{}
	doc, err := parser.Parse(bytes.NewReader(data), name)
	if err != nil {
		jsonError(w, "parse failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, toPage(s.engine.Layout(doc)))
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (*layout.Page, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		jsonError(w, "id query parameter is required", http.StatusBadRequest)
		return nil, false
	}
	doc, err := s.resolver.Resolve(r.Context(), id)
	if err != nil {
		s.log.Warn("resolve failed", "id", id, "error", err)
		jsonError(w, err.Error(), statusFor(err))
		return nil, false
	}
	return s.engine.Layout(doc), true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, content.ErrUnsupported):
		return http.StatusUnsupportedMediaType
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
