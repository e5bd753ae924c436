package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/devlog-app/backend/database"
	"github.com/devlog-app/backend/errs"
	"github.com/devlog-app/backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type entryHandler struct {
	responder Responder
	logger    zerolog.Logger
	entryRepo *database.EntryRepo
}

func newEntryHandler(entryRepo *database.EntryRepo) entryHandler {
	logger := log.With().Str("handlerName", "entryHandler").Logger()

	return entryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		entryRepo: entryRepo,
	}
}

// entryRequest is the wire shape for entry creation and partial update.
// Pointer fields distinguish "omitted" from "set to zero value"; for tags and
// projectIds that distinction decides whether associations are replaced.
type entryRequest struct {
	Date       *time.Time `json:"date"`
	Content    *string    `json:"content"`
	Bug        *string    `json:"bug"`
	Solution   *string    `json:"solution"`
	TimeSpent  *int       `json:"timeSpent"`
	Confidence *int       `json:"confidence"`
	Notes      *string    `json:"notes"`
	Tags       *[]string  `json:"tags"`
	ProjectIDs *[]uint    `json:"projectIds"`
}

// validate fails fast on the first violating field
func (req entryRequest) validate(requireContent bool) *errs.ApiErr {
	if requireContent && req.Content == nil {
		return errs.NewMissingRequiredFieldError("content")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return errs.NewValidationError("content", "content must not be empty")
	}
	if req.TimeSpent != nil && *req.TimeSpent < 0 {
		return errs.NewValidationError("timeSpent", "timeSpent must not be negative")
	}
	if req.Confidence != nil && (*req.Confidence < 1 || *req.Confidence > 5) {
		return errs.NewValidationError("confidence", "confidence must be between 1 and 5")
	}
	return nil
}

// columnUpdates maps the supplied fields to their database columns
func (req entryRequest) columnUpdates() map[string]any {
	updates := map[string]any{}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Bug != nil {
		updates["bug"] = *req.Bug
	}
	if req.Solution != nil {
		updates["solution"] = *req.Solution
	}
	if req.TimeSpent != nil {
		updates["time_spent"] = *req.TimeSpent
	}
	if req.Confidence != nil {
		updates["confidence"] = *req.Confidence
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	return updates
}

// listEntries retrieves all of the caller's entries, enriched
// @Summary List entries
// @Description Retrieves the caller's journal entries with tags and projects, most recent first
// @Tags Entries
// @Produce json
// @Success 200 {array} database.EnrichedEntry "Enriched entries"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/entries [get]
func (h entryHandler) listEntries() http.HandlerFunc {
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

		h.responder.WriteJSON(w, entries)
	}
}

// createEntry creates a new journal entry
// @Summary Create entry
// @Description Creates a journal entry, resolving tag names and linking projects
// @Tags Entries
// @Accept json
// @Produce json
// @Param entry body entryRequest true "Entry data"
// @Success 201 {object} models.Entry "Created entry"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/entries [post]
func (h entryHandler) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		var req entryRequest
		if apiErr := decodeJSON(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}
		if apiErr := req.validate(true); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		entry := models.Entry{
			Content:    *req.Content,
			Bug:        req.Bug,
			Solution:   req.Solution,
			Notes:      req.Notes,
			TimeSpent:  0,
			Confidence: 3,
		}
		if req.Date != nil {
			entry.Date = *req.Date
		}
		if req.TimeSpent != nil {
			entry.TimeSpent = *req.TimeSpent
		}
		if req.Confidence != nil {
			entry.Confidence = *req.Confidence
		}

		var tagNames []string
		if req.Tags != nil {
			tagNames = *req.Tags
		}
		var projectIDs []uint
		if req.ProjectIDs != nil {
			projectIDs = *req.ProjectIDs
		}

		if err := h.entryRepo.Create(userID, &entry, tagNames, projectIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "entry", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, entry)
	}
}

// getEntry retrieves one of the caller's entries by id, enriched
// @Summary Get entry
// @Description Retrieves a single enriched entry. Absent and not-owned ids are both 404
// @Tags Entries
// @Produce json
// @Param entryID path int true "Entry ID"
// @Success 200 {object} database.EnrichedEntry "Enriched entry"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/entries/{entryID} [get]
func (h entryHandler) getEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		entryID, apiErr := parsePathID(r, "entryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		entry, err := h.entryRepo.FindByID(entryID, userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "entry", err))
			return
		}
		if entry == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Entry not found"))
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}

// updateEntry updates one of the caller's entries
// @Summary Update entry
// @Description Partially updates an entry. Supplying tags or projectIds (even empty) replaces that relation; omitting leaves it untouched
// @Tags Entries
// @Accept json
// @Produce json
// @Param entryID path int true "Entry ID"
// @Param entry body entryRequest true "Partial entry data"
// @Success 200 {object} models.Entry "Updated entry"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/entries/{entryID} [put]
func (h entryHandler) updateEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		entryID, apiErr := parsePathID(r, "entryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req entryRequest
		if apiErr := decodeJSON(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}
		if apiErr := req.validate(false); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		entry, err := h.entryRepo.Update(entryID, userID, req.columnUpdates(), req.Tags, req.ProjectIDs)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "entry", err))
			return
		}
		if entry == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Entry not found"))
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}

// deleteEntry deletes one of the caller's entries and its association rows
// @Summary Delete entry
// @Description Deletes an entry and its tag/project links. Non-owned and absent ids are a no-op
// @Tags Entries
// @Param entryID path int true "Entry ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/entries/{entryID} [delete]
func (h entryHandler) deleteEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		entryID, apiErr := parsePathID(r, "entryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.entryRepo.Delete(entryID, userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "entry", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// parsePathID parses a numeric id path parameter
func parsePathID(r *http.Request, param string) (uint, *errs.ApiErr) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + param)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + param)
	}
	return uint(id), nil
}
