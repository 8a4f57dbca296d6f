package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/archwize/archwize/internal/adapters/http"
	"github.com/archwize/archwize/internal/logging"
	"github.com/archwize/archwize/pkg/mermaid"
)

type stubService struct {
	prompt      string
	orientation mermaid.Orientation
	code        string
}

func (s *stubService) Generate(_ context.Context, prompt string, orientation mermaid.Orientation) string {
	s.prompt = prompt
	s.orientation = orientation
	return s.code
}

func newHandler(svc *stubService) http.Handler {
	return httpadapter.NewHandler(svc, logging.NewNop())
}

func TestGenerateSuccess(t *testing.T) {
	svc := &stubService{code: "graph LR;\n  A[\"Start\"] --> B[\"End\"];\n"}
	handler := newHandler(svc)

	body := `{"prompt": "user login flow", "orientation": "LR"}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpadapter.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, svc.code, resp.MermaidCode)
	assert.Equal(t, "Diagram generated successfully", resp.Message)

	assert.Equal(t, "user login flow", svc.prompt)
	assert.Equal(t, mermaid.LeftRight, svc.orientation)
}

func TestGenerateDefaultsOrientation(t *testing.T) {
	svc := &stubService{code: "graph TD;\n"}
	handler := newHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"prompt": "x"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mermaid.TopDown, svc.orientation)
}

func TestGenerateMissingPrompt(t *testing.T) {
	handler := newHandler(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(`{"prompt": "   "}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httpadapter.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "missing_prompt", resp.Error)
}

func TestGenerateInvalidJSON(t *testing.T) {
	handler := newHandler(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httpadapter.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error)
}

func TestHealthz(t *testing.T) {
	handler := newHandler(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ArchWize backend running")
}

func TestCORSPreflight(t *testing.T) {
	handler := newHandler(&stubService{})

	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
