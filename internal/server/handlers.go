package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/amarzeus/readme-studio/internal/llm"
	"github.com/amarzeus/readme-studio/internal/pipeline"
	"github.com/amarzeus/readme-studio/internal/render"
	"github.com/amarzeus/readme-studio/internal/schemas"
	"github.com/amarzeus/readme-studio/internal/types"
)

// GenerateResponse is the response for /generate. On failure Document holds
// the fixed error placeholder and Error the user-facing message.
type GenerateResponse struct {
	Document *types.GeneratedDocument `json:"document"`
	Warnings []string                 `json:"warnings,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

// RenderRequest is the request body for /render.
type RenderRequest struct {
	Markdown string `json:"markdown"`
}

// RenderResponse is the response for /render.
type RenderResponse struct {
	HTML string `json:"html"`
}

// handleGenerate runs one generation cycle for the posted profile.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	// Shape check against the embedded schema before decoding.
	if err := schemas.ValidateProfileJSON(body); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			s.errorResponse(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var profile types.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Invalid URL fields are flagged but do not block generation.
	warnings := profile.URLWarnings()

	doc, err := s.generator.Generate(r.Context(), &profile)
	if err != nil {
		if errors.Is(err, pipeline.ErrBusy) {
			s.errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		genErr := llm.ClassifyError(err)
		var known *llm.GenerationError
		if errors.As(err, &known) {
			genErr = known
		}
		s.jsonResponse(w, http.StatusBadGateway, GenerateResponse{
			Document: pipeline.ErrorDocument(),
			Warnings: warnings,
			Error:    genErr.Message,
		})
		return
	}

	if err := s.store.SaveDocument(doc); err != nil {
		// The document was generated; losing history is not worth failing
		// the request over.
		s.logger.Error("saving document", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		Document: doc,
		Warnings: warnings,
	})
}

// handleRender converts raw markdown to preview HTML without a generation
// call.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RenderResponse{HTML: render.Render(req.Markdown)})
}

// handlePlaceholder returns the initial preview document.
func (s *Server) handlePlaceholder(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, GenerateResponse{Document: pipeline.PlaceholderDocument()})
}
