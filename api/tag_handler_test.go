package api

import (
	"net/http"
	"testing"

	"github.com/devlog-app/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTagsNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Tag](t, rec))
}

func TestListTagsReflectsSharedVocabulary(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/entries", "alice", map[string]any{
		"content": "Learned closures",
		"tags":    []string{"js", "fp"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/entries", "bob", map[string]any{
		"content": "Also js",
		"tags":    []string{"js"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tags := decodeBody[[]models.Tag](t, rec)
	require.Len(t, tags, 2, "tags are global, never per-user duplicates")

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"js", "fp"}, names)
}
