package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amarzeus/readme-studio/internal/storage"
)

// handleListDocuments returns generation history, newest first.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	docs, err := s.store.ListDocuments(limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleGetDocument returns one document with its raw markdown and rendered
// HTML. This backs the share view.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.documentID(w, r)
	if !ok {
		return
	}

	doc, err := s.store.GetDocument(id)
	if errors.Is(err, storage.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch document: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDownloadDocument serves the raw markdown as a README.md attachment.
func (s *Server) handleDownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.documentID(w, r)
	if !ok {
		return
	}

	doc, err := s.store.GetDocument(id)
	if errors.Is(err, storage.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch document: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="README.md"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc.Markdown)); err != nil {
		s.logger.Error("writing download response", zap.Error(err))
	}
}

// handleDeleteDocument removes a document from history.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.documentID(w, r)
	if !ok {
		return
	}

	err := s.store.DeleteDocument(id)
	if errors.Is(err, storage.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete document: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// documentID parses the {id} path value, writing a 400 on failure.
func (s *Server) documentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return uuid.Nil, false
	}
	return id, true
}
