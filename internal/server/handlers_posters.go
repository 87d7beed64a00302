package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/poster-studio/internal/db"
	"github.com/jonathan/poster-studio/internal/poster"
	"github.com/jonathan/poster-studio/internal/schemas"
	"github.com/jonathan/poster-studio/internal/types"
)

// SavePosterRequest is the payload for creating or updating a stored poster.
// The posting stays raw JSON until it passes schema validation.
type SavePosterRequest struct {
	Label      string            `json:"label" validate:"required,min=1,max=200"`
	TemplateID string            `json:"template_id" validate:"omitempty,max=64"`
	Posting    json.RawMessage   `json:"posting"`
	Style      types.StyleConfig `json:"style"`
}

// ListPostersResponse represents the response for listing posters
type ListPostersResponse struct {
	Posters []db.Poster `json:"posters"`
	Count   int         `json:"count"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
}

// decodeSaveRequest reads and validates a SavePosterRequest, returning the
// parsed poster input. Writes the error response itself on failure.
func (s *Server) decodeSaveRequest(w http.ResponseWriter, r *http.Request) (*db.PosterInput, bool) {
	var req SavePosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return nil, false
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return nil, false
	}

	input := db.PosterInput{
		Label: req.Label,
		Style: req.Style,
	}

	input.TemplateID = req.TemplateID
	if input.TemplateID == "" {
		input.TemplateID = s.defaultTemplate
	}
	if !poster.HasTemplate(input.TemplateID) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown template id: "+input.TemplateID)
		return nil, false
	}

	if len(req.Posting) > 0 {
		if err := schemas.ValidatePosting(string(req.Posting)); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				s.errorResponse(w, http.StatusBadRequest, err.Error())
			} else {
				s.errorResponse(w, http.StatusBadRequest, "Invalid posting JSON: "+err.Error())
			}
			return nil, false
		}
		if err := json.Unmarshal(req.Posting, &input.Posting); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid posting JSON: "+err.Error())
			return nil, false
		}
	}

	return &input, true
}

// handleCreatePoster stores a new poster
func (s *Server) handleCreatePoster(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	p, err := s.db.CreatePoster(r.Context(), *input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, p)
}

// handleListPosters lists stored posters with pagination
func (s *Server) handleListPosters(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	posters, total, err := s.db.ListPosters(r.Context(), db.ListPostersOptions{Limit: limit, Offset: offset})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListPostersResponse{
		Posters: posters,
		Count:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// posterByID parses the path id and loads the poster, writing the error
// response on failure
func (s *Server) posterByID(w http.ResponseWriter, r *http.Request) (*db.Poster, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid poster ID")
		return nil, false
	}

	p, err := s.db.GetPosterByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if p == nil {
		s.errorResponse(w, http.StatusNotFound, "Poster not found")
		return nil, false
	}
	return p, true
}

// handleGetPoster retrieves a poster by its ID
func (s *Server) handleGetPoster(w http.ResponseWriter, r *http.Request) {
	p, ok := s.posterByID(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleUpdatePoster replaces a poster's content
func (s *Server) handleUpdatePoster(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid poster ID")
		return
	}

	input, ok := s.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	p, err := s.db.UpdatePoster(r.Context(), id, *input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if p == nil {
		s.errorResponse(w, http.StatusNotFound, "Poster not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, p)
}

// handleDeletePoster removes a poster
func (s *Server) handleDeletePoster(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid poster ID")
		return
	}

	deleted, err := s.db.DeletePoster(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Poster not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleRenderPoster renders a stored poster with its saved template and style
func (s *Server) handleRenderPoster(w http.ResponseWriter, r *http.Request) {
	p, ok := s.posterByID(w, r)
	if !ok {
		return
	}

	doc := poster.Render(p.TemplateID, &p.Posting, &p.Style)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// handleExportPoster rasterizes a stored poster and records the artifact.
// The format query parameter selects pdf (default) or png.
func (s *Server) handleExportPoster(w http.ResponseWriter, r *http.Request) {
	p, ok := s.posterByID(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = db.ExportFormatPDF
	}
	if format != db.ExportFormatPDF && format != db.ExportFormatPNG {
		s.errorResponse(w, http.StatusBadRequest, "Unknown export format: "+format)
		return
	}

	doc := poster.Render(p.TemplateID, &p.Posting, &p.Style)

	var artifact []byte
	var err error
	width := 0
	contentType := "application/pdf"
	if format == db.ExportFormatPNG {
		width = parseQueryInt(r, "width", s.pngWidth(), 4096)
		contentType = "image/png"
		artifact, err = s.rasterizer.PNG(r.Context(), doc, width)
	} else {
		artifact, err = s.rasterizer.PDF(r.Context(), doc)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	if _, err := s.db.RecordExport(r.Context(), p.ID, format, width, len(artifact)); err != nil {
		// The artifact is already produced; losing the history row should not
		// fail the download.
		log.Printf("[export] failed to record export for poster %s: %v", p.ID, err)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="poster.`+format+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact)
}

// handleListPosterExports returns export history for one poster
func (s *Server) handleListPosterExports(w http.ResponseWriter, r *http.Request) {
	p, ok := s.posterByID(w, r)
	if !ok {
		return
	}

	exports, err := s.db.ListExportsByPoster(r.Context(), p.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"exports": exports})
}
