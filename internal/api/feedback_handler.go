package api

import (
	"context"
	"net/http"

	"rag-assistant/client/internal/interfaces"
	"rag-assistant/client/internal/service"
)

type OpenFeedbackRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	MessageID      string `json:"message_id" validate:"required"`
}

type RatingRequest struct {
	// 0 unsets the rating.
	Rating int `json:"rating" validate:"min=0,max=5"`
}

// FeedbackHandler drives the feedback dialog. Every route answers with the
// dialog view; a failed submission is reported with the error status and
// the dialog stays open.
type FeedbackHandler struct {
	dialog interfaces.FeedbackDialog
}

func NewFeedbackHandler(dialog interfaces.FeedbackDialog) *FeedbackHandler {
	return &FeedbackHandler{dialog: dialog}
}

// GetDialog godoc
// @Summary      Get the feedback dialog
// @Description  Returns the feedback dialog view.
// @Tags         Feedback
// @Produce      json
// @Success      200  {object}  service.FeedbackView
// @Router       /v1/session/feedback [get]
func (h *FeedbackHandler) GetDialog(w http.ResponseWriter, r *http.Request) {
	respondWithView(w, h.dialog.View())
}

// OpenDialog godoc
// @Summary      Open the feedback dialog
// @Description  Opens the dialog for one answer with the rating unset.
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        openRequest  body  OpenFeedbackRequest  true  "Answer to rate"
// @Success      200  {object}  service.FeedbackView
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/session/feedback [post]
func (h *FeedbackHandler) OpenDialog(w http.ResponseWriter, r *http.Request) {
	var req OpenFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.dialog.Open(req.ConversationID, req.MessageID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithView(w, h.dialog.View())
}

// SetRating godoc
// @Summary      Set the rating
// @Description  Sets the star rating of the open dialog. 0 unsets it.
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        ratingRequest  body  RatingRequest  true  "Rating from 0 to 5"
// @Success      200  {object}  service.FeedbackView
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/session/feedback/rating [put]
func (h *FeedbackHandler) SetRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.dialog.SetRating(req.Rating); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithView(w, h.dialog.View())
}

// Submit godoc
// @Summary      Submit feedback
// @Description  Sends the rating to the backend. On success the dialog closes; on failure it stays open with the error.
// @Tags         Feedback
// @Produce      json
// @Success      200  {object}  service.FeedbackView
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/feedback/submit [post]
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := h.dialog.Submit(context.WithoutCancel(r.Context())); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithView(w, h.dialog.View())
}

// CloseDialog godoc
// @Summary      Close the feedback dialog
// @Description  Closes the dialog without submitting.
// @Tags         Feedback
// @Produce      json
// @Success      200  {object}  service.FeedbackView
// @Router       /v1/session/feedback [delete]
func (h *FeedbackHandler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	h.dialog.Close()
	respondWithView(w, h.dialog.View())
}

func respondWithView(w http.ResponseWriter, view service.FeedbackView) {
	respondWithJSON(w, http.StatusOK, view)
}
