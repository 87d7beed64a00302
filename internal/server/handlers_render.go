package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/poster-studio/internal/export"
	"github.com/jonathan/poster-studio/internal/poster"
	"github.com/jonathan/poster-studio/internal/types"
)

// RenderRequest is the payload for the render, preview and export endpoints.
// Posting and style may be null; the engine degrades to a placeholder
// document rather than erroring.
type RenderRequest struct {
	TemplateID string             `json:"template_id"`
	Posting    *types.JobPosting  `json:"posting"`
	Style      *types.StyleConfig `json:"style"`
}

// decodeRenderRequest reads a RenderRequest, applying the server default
// template when none is given
func (s *Server) decodeRenderRequest(r *http.Request) (*RenderRequest, error) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	if req.TemplateID == "" {
		req.TemplateID = s.defaultTemplate
	}
	return &req, nil
}

// handleRender renders one template and returns the HTML document
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRenderRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	doc := poster.Render(req.TemplateID, req.Posting, req.Style)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// PreviewResponse maps template ids to rendered documents
type PreviewResponse struct {
	Documents map[string]string `json:"documents"`
}

// handlePreview renders the posting against every registered template
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRenderRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	docs, err := poster.RenderAll(r.Context(), req.Posting, req.Style)
	if err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Preview cancelled: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, PreviewResponse{Documents: docs})
}

// handleListTemplates returns the registered template descriptors
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates":  poster.Templates(),
		"default_id": s.defaultTemplate,
	})
}

// handleExportPDF renders and rasterizes to a PDF without persisting anything
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRenderRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	doc := poster.Render(req.TemplateID, req.Posting, req.Style)
	pdf, err := s.rasterizer.PDF(r.Context(), doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="poster.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleExportPNG renders and rasterizes to a PNG without persisting anything
func (s *Server) handleExportPNG(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRenderRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	width := parseQueryInt(r, "width", s.pngWidth(), 4096)

	doc := poster.Render(req.TemplateID, req.Posting, req.Style)
	png, err := s.rasterizer.PNG(r.Context(), doc, width)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Export failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="poster.png"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// pngWidth returns the configured PNG viewport width, or the A4 screen width
func (s *Server) pngWidth() int {
	if s.viewportWidth > 0 {
		return s.viewportWidth
	}
	return export.DefaultViewportWidth
}
