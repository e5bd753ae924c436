package api

import (
	"net/http"
	"time"

	"github.com/devlog-app/backend/database"
	"github.com/devlog-app/backend/errs"
	"github.com/devlog-app/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// nextStepsWindow caps how many recent entries feed a suggestion request
const nextStepsWindow = 20

type aiHandler struct {
	responder Responder
	logger    zerolog.Logger
	entryRepo *database.EntryRepo
	aiClient  *services.AIClient
}

func newAIHandler(entryRepo *database.EntryRepo, aiClient *services.AIClient) aiHandler {
	logger := log.With().Str("handlerName", "aiHandler").Logger()

	return aiHandler{
		responder: NewResponder(logger),
		logger:    logger,
		entryRepo: entryRepo,
		aiClient:  aiClient,
	}
}

type summaryRequest struct {
	TimeRange string `json:"timeRange"`
}

// generateSummary summarizes the caller's recent entries
// @Summary Summarize journal
// @Description Produces an AI summary of the caller's recent entries, or a static fallback when no model is configured
// @Tags AI
// @Accept json
// @Produce json
// @Param input body summaryRequest true "Time range: daily or weekly"
// @Success 200 {object} services.SummaryResult "Summary"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/ai/summary [post]
func (h aiHandler) generateSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		var req summaryRequest
		if apiErr := decodeJSON(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var since time.Time
		switch req.TimeRange {
		case "daily":
			since = time.Now().AddDate(0, 0, -1)
		case "weekly":
			since = time.Now().AddDate(0, 0, -7)
		default:
			h.responder.WriteError(w, errs.NewValidationError("timeRange", "timeRange must be daily or weekly"))
			return
		}

		entries, err := h.entryRepo.FindAllByOwner(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "entries", err))
			return
		}

		windowed := make([]database.EnrichedEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.Date.After(since) {
				windowed = append(windowed, entry)
			}
		}

		h.responder.WriteJSON(w, h.aiClient.Summarize(r.Context(), windowed, req.TimeRange))
	}
}

// suggestNextSteps proposes what the caller should learn next
// @Summary Suggest next steps
// @Description Produces AI learning suggestions from recent entries, or a static fallback when no model is configured
// @Tags AI
// @Produce json
// @Success 200 {object} services.NextStepsResult "Suggestions"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/ai/next-steps [post]
func (h aiHandler) suggestNextSteps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		entries, err := h.entryRepo.FindAllByOwner(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "entries", err))
			return
		}
		if len(entries) > nextStepsWindow {
			entries = entries[:nextStepsWindow]
		}

		h.responder.WriteJSON(w, h.aiClient.SuggestNextSteps(r.Context(), entries))
	}
}
