package api

import (
	"net/http"
	"testing"

	"github.com/devlog-app/backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRejectsUnknownTimeRange(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/ai/summary", "alice", map[string]any{
		"timeRange": "monthly",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "timeRange", body.Field)
}

func TestSummaryFallsBackWithoutModel(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/entries", "alice", map[string]any{"content": "Learned closures"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/ai/summary", "alice", map[string]any{"timeRange": "daily"})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeBody[services.SummaryResult](t, rec)
	assert.NotEmpty(t, result.Summary)
	assert.NotNil(t, result.Insights)
}

func TestNextStepsFallsBackWithoutModel(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/ai/next-steps", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeBody[services.NextStepsResult](t, rec)
	assert.NotNil(t, result.Suggestions)
	assert.Empty(t, result.Suggestions)
}

func TestAIEndpointsRequireAuth(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/ai/summary", "", map[string]any{"timeRange": "daily"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/ai/next-steps", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
