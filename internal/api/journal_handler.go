package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/interfaces"
	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/repository"
)

const (
	defaultJournalLimit = 50
	maxJournalLimit     = 500
)

type JournalHandler struct {
	reader interfaces.JournalReader
}

func NewJournalHandler(reader interfaces.JournalReader) *JournalHandler {
	return &JournalHandler{reader: reader}
}

// ListEntries godoc
// @Summary      List journal entries
// @Description  Returns the newest lifecycle entries, newest first.
// @Tags         Journal
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of entries (1-500)"  default(50)
// @Success      200  {array}   model.JournalEntry
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/journal [get]
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	limit := defaultJournalLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxJournalLimit {
			respondWithError(w, fmt.Errorf("%w: limit must be between 1 and %d", app_errors.ErrValidation, maxJournalLimit))
			return
		}
		limit = n
	}

	entries, err := h.reader.Recent(r.Context(), limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithEntries(w, entries)
}

// GetRequest godoc
// @Summary      Get the lifecycle of a request
// @Description  Returns every journal entry of one request in order.
// @Tags         Journal
// @Produce      json
// @Param        requestID  path  string  true  "Request ID"
// @Success      200  {array}   model.JournalEntry
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/journal/{requestID} [get]
func (h *JournalHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")
	entries, err := h.reader.ByRequest(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = fmt.Errorf("%w: request %s", app_errors.ErrNotFound, requestID)
		}
		respondWithError(w, err)
		return
	}
	respondWithEntries(w, entries)
}

func respondWithEntries(w http.ResponseWriter, entries []model.JournalEntry) {
	respondWithJSON(w, http.StatusOK, entries)
}
