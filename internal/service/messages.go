package service

import (
	"context"
	"fmt"
	"strings"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/session"
)

// SendMessage sends query to the current conversation using the current
// selection. The user's message is appended before the call is made and is
// kept whatever the outcome. The call is skipped when no conversation is
// current or no document is selected.
func (d *Dispatcher) SendMessage(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)

	var (
		conversationID string
		selected       []string
	)
	return d.run(ctx, task{
		op:      session.OpSendMessage,
		current: true,
		prepare: func(st session.State) ([]session.Action, error) {
			if query == "" {
				return nil, precondition("query is empty")
			}
			if !st.CanSend() {
				return nil, precondition("a conversation and at least one selected document are required")
			}
			conversationID = st.CurrentConversationID
			selected = st.SelectedDocuments.Items()
			echo := model.Message{ID: d.newID(), Role: model.RoleUser, Content: query}
			return []session.Action{session.EchoUserMessage{Message: echo}}, nil
		},
		call: func(ctx context.Context) (session.Result, error) {
			answer, err := d.backend.SendMessage(ctx, conversationID, query, selected)
			if err != nil {
				return nil, err
			}
			return session.MessageAnswered{MessageID: d.newID(), Answer: answer.Response, Title: answer.Title}, nil
		},
	})
}

// SubmitFeedback rates an assistant message. Rating 0 means unset and is
// never submitted. Session State is unaffected apart from the shared loading flag.
func (d *Dispatcher) SubmitFeedback(ctx context.Context, conversationID, messageID string, rating int) error {
	return d.run(ctx, task{
		op:             session.OpSubmitFeedback,
		conversationID: conversationID,
		prepare: func(session.State) ([]session.Action, error) {
			switch {
			case conversationID == "" || messageID == "":
				return nil, precondition("conversation and message ids are required")
			case rating == 0:
				return nil, precondition("rating is unset")
			case rating < 1 || rating > 5:
				return nil, fmt.Errorf("%w: rating must be between 1 and 5", app_errors.ErrValidation)
			}
			return nil, nil
		},
		call: func(ctx context.Context) (session.Result, error) {
			err := d.backend.SubmitFeedback(ctx, gateway.FeedbackRequest{
				ConversationID: conversationID,
				MessageID:      messageID,
				Rating:         rating,
			})
			if err != nil {
				return nil, err
			}
			return session.FeedbackSubmitted{}, nil
		},
	})
}

// DismissError clears the error slot.
func (d *Dispatcher) DismissError() session.State {
	return d.store.Dispatch(session.DismissError{})
}
