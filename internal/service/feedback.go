package service

import (
	"context"
	"fmt"
	"sync"

	app_errors "rag-assistant/client/internal/errors"
)

// FeedbackSubmitter is the part of the dispatcher the dialog needs.
type FeedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, conversationID, messageID string, rating int) error
}

// FeedbackView is a read-only copy of the dialog.
type FeedbackView struct {
	Open           bool   `json:"open"`
	ConversationID string `json:"conversation_id,omitempty"`
	MessageID      string `json:"message_id,omitempty"`
	// Rating is 0 while unset.
	Rating int    `json:"rating"`
	Error  string `json:"error,omitempty"`
}

// FeedbackDialog holds the local state of the "rate this answer" flow. It is
// separate from the session state: a failed submission keeps the dialog open
// with an inline error, a successful one closes it and unsets the rating.
type FeedbackDialog struct {
	mu        sync.Mutex
	submitter FeedbackSubmitter
	view      FeedbackView
}

func NewFeedbackDialog(submitter FeedbackSubmitter) *FeedbackDialog {
	return &FeedbackDialog{submitter: submitter}
}

// Open starts rating messageID of conversationID, discarding any previous draft.
func (d *FeedbackDialog) Open(conversationID, messageID string) error {
	if conversationID == "" || messageID == "" {
		return fmt.Errorf("%w: conversation and message ids are required", app_errors.ErrPrecondition)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view = FeedbackView{Open: true, ConversationID: conversationID, MessageID: messageID}
	return nil
}

// SetRating records a draft rating; 0 resets it to unset.
func (d *FeedbackDialog) SetRating(rating int) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", app_errors.ErrValidation)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.view.Open {
		return fmt.Errorf("%w: feedback dialog is closed", app_errors.ErrPrecondition)
	}
	d.view.Rating = rating
	return nil
}

// Submit sends the draft. An unset rating is never submitted.
func (d *FeedbackDialog) Submit(ctx context.Context) error {
	d.mu.Lock()
	draft := d.view
	d.mu.Unlock()

	if !draft.Open {
		return fmt.Errorf("%w: feedback dialog is closed", app_errors.ErrPrecondition)
	}
	if draft.Rating == 0 {
		return fmt.Errorf("%w: rating is unset", app_errors.ErrPrecondition)
	}

	err := d.submitter.SubmitFeedback(ctx, draft.ConversationID, draft.MessageID, draft.Rating)

	d.mu.Lock()
	defer d.mu.Unlock()
	// The user may have moved on to another message meanwhile.
	if !d.view.Open || d.view.MessageID != draft.MessageID {
		return err
	}
	if err != nil {
		d.view.Error = err.Error()
		return err
	}
	d.view = FeedbackView{}
	return nil
}

// Close abandons the draft.
func (d *FeedbackDialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view = FeedbackView{}
}

func (d *FeedbackDialog) View() FeedbackView {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}
