package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandleGetPoster_InvalidID tests get poster with an invalid UUID
func TestHandleGetPoster_InvalidID(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/posters/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetPoster(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid poster ID")
}

// TestHandleDeletePoster_InvalidID tests delete poster with an invalid UUID
func TestHandleDeletePoster_InvalidID(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/posters/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleDeletePoster(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleUpdatePoster_InvalidID tests update poster with an invalid UUID
func TestHandleUpdatePoster_InvalidID(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPut, "/posters/not-a-uuid", strings.NewReader(`{}`))
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleUpdatePoster(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleCreatePoster_MissingLabel tests struct validation on create
func TestHandleCreatePoster_MissingLabel(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/posters", strings.NewReader(`{"template_id": "template-1"}`))
	w := httptest.NewRecorder()

	s.handleCreatePoster(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Validation failed")
}

// TestHandleCreatePoster_UnknownTemplate tests template id checking on create
func TestHandleCreatePoster_UnknownTemplate(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/posters",
		strings.NewReader(`{"label": "Spring drive", "template_id": "template-99"}`))
	w := httptest.NewRecorder()

	s.handleCreatePoster(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Unknown template id")
}

// TestHandleCreatePoster_SchemaViolation tests posting schema validation on create
func TestHandleCreatePoster_SchemaViolation(t *testing.T) {
	s, _ := newTestServer()

	body := `{
		"label": "Spring drive",
		"posting": {"primary_listing": {"openings_count": -3}}
	}`
	req := httptest.NewRequest(http.MethodPost, "/posters", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleCreatePoster(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "openings_count")
}

// TestHandleExportPoster_InvalidID tests export with an invalid UUID
func TestHandleExportPoster_InvalidID(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/posters/not-a-uuid/export", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleExportPoster(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
