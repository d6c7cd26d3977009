package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/service"
)

func TestFeedbackHandler_Flow(t *testing.T) {
	t.Run("Open", func(t *testing.T) {
		router, _, dialog, _ := setupRouter(t)
		dialog.On("Open", "c1", "m1").Return(nil).Once()
		dialog.On("View").Return(service.FeedbackView{Open: true, ConversationID: "c1", MessageID: "m1"}).Once()

		rr := serve(router, http.MethodPost, "/api/v1/session/feedback", `{"conversation_id":"c1","message_id":"m1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"open":true,"conversation_id":"c1","message_id":"m1","rating":0}`, rr.Body.String())
	})

	t.Run("Open requires ids", func(t *testing.T) {
		router, _, _, _ := setupRouter(t)

		rr := serve(router, http.MethodPost, "/api/v1/session/feedback", `{"conversation_id":"c1"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Rating out of range never reaches the dialog", func(t *testing.T) {
		router, _, _, _ := setupRouter(t)

		rr := serve(router, http.MethodPut, "/api/v1/session/feedback/rating", `{"rating":7}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Rating on a closed dialog", func(t *testing.T) {
		router, _, dialog, _ := setupRouter(t)
		dialog.On("SetRating", 3).Return(fmt.Errorf("%w: feedback dialog is closed", app_errors.ErrPrecondition)).Once()

		rr := serve(router, http.MethodPut, "/api/v1/session/feedback/rating", `{"rating":3}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Submit failure", func(t *testing.T) {
		router, _, dialog, _ := setupRouter(t)
		dialog.On("Submit", mock.Anything).Return(&gateway.Error{StatusCode: 404, Detail: "message not found"}).Once()

		rr := serve(router, http.MethodPost, "/api/v1/session/feedback/submit", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Submit success", func(t *testing.T) {
		router, _, dialog, _ := setupRouter(t)
		dialog.On("Submit", mock.Anything).Return(nil).Once()
		dialog.On("View").Return(service.FeedbackView{}).Once()

		rr := serve(router, http.MethodPost, "/api/v1/session/feedback/submit", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Close", func(t *testing.T) {
		router, _, dialog, _ := setupRouter(t)
		dialog.On("Close").Return().Once()
		dialog.On("View").Return(service.FeedbackView{}).Once()

		rr := serve(router, http.MethodDelete, "/api/v1/session/feedback", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unexpected submit error", func(t *testing.T) {
		router, _, dialog, _ := setupRouter(t)
		dialog.On("Submit", mock.Anything).Return(errors.New("boom")).Once()

		rr := serve(router, http.MethodPost, "/api/v1/session/feedback/submit", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
