package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rag-assistant/client/internal/api"
	"rag-assistant/client/internal/interfaces/mocks"
	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/repository"
)

func TestJournalHandler_ListEntries(t *testing.T) {
	t.Run("Default limit", func(t *testing.T) {
		router, _, _, journal := setupRouter(t)
		entries := []model.JournalEntry{{ID: 2, RequestID: "r1", Op: "send_message", Phase: model.PhaseSucceeded, CreatedAt: time.Now().UTC()}}
		journal.On("Recent", mock.Anything, 50).Return(entries, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/journal", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []model.JournalEntry
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "r1", got[0].RequestID)
	})

	t.Run("Explicit limit", func(t *testing.T) {
		router, _, _, journal := setupRouter(t)
		journal.On("Recent", mock.Anything, 5).Return([]model.JournalEntry{}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/journal?limit=5", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		router, _, _, _ := setupRouter(t)

		for _, limit := range []string{"0", "abc", "501"} {
			rr := serve(router, http.MethodGet, "/api/v1/journal?limit="+limit, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code, limit)
		}
	})
}

func TestJournalHandler_GetRequest(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		router, _, _, journal := setupRouter(t)
		journal.On("ByRequest", mock.Anything, "nope").Return(nil, repository.ErrNotFound).Once()

		rr := serve(router, http.MethodGet, "/api/v1/journal/nope", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Found", func(t *testing.T) {
		router, _, _, journal := setupRouter(t)
		journal.On("ByRequest", mock.Anything, "r1").
			Return([]model.JournalEntry{{RequestID: "r1", Phase: model.PhaseStarted}}, nil).Once()

		rr := serve(router, http.MethodGet, "/api/v1/journal/r1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouter_JournalDisabled(t *testing.T) {
	router := api.NewRouter(
		api.NewSessionHandler(mocks.NewMockSessionService(t)),
		api.NewFeedbackHandler(mocks.NewMockFeedbackDialog(t)),
		nil,
	)

	rr := serve(router, http.MethodGet, "/api/v1/journal", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
