package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rag-assistant/client/internal/session"
)

// CreateConversation asks the backend for a new conversation and makes it current.
func (d *Dispatcher) CreateConversation(ctx context.Context) error {
	return d.run(ctx, task{
		op: session.OpCreateConversation,
		call: func(ctx context.Context) (session.Result, error) {
			conv, err := d.backend.CreateConversation(ctx, d.opts.UserID)
			if err != nil {
				return nil, err
			}
			return session.ConversationCreated{Conversation: conv}, nil
		},
	})
}

// ListConversations replaces the conversation list with the backend's.
func (d *Dispatcher) ListConversations(ctx context.Context) error {
	return d.run(ctx, task{
		op: session.OpListConversations,
		call: func(ctx context.Context) (session.Result, error) {
			convs, err := d.backend.ListConversations(ctx)
			if err != nil {
				return nil, err
			}
			return session.ConversationsListed{Conversations: convs}, nil
		},
	})
}

func (d *Dispatcher) DeleteConversation(ctx context.Context, conversationID string) error {
	return d.run(ctx, task{
		op:             session.OpDeleteConversation,
		conversationID: conversationID,
		prepare:        requireConversation(conversationID),
		call: func(ctx context.Context) (session.Result, error) {
			if err := d.backend.DeleteConversation(ctx, conversationID); err != nil {
				return nil, err
			}
			return session.ConversationDeleted{ID: conversationID}, nil
		},
	})
}

// SelectConversation only moves the current pointer. It does not reload the
// transcript or documents; see OpenConversation.
func (d *Dispatcher) SelectConversation(conversationID string) session.State {
	return d.store.Dispatch(session.SelectConversation{ID: conversationID})
}

// LoadHistory replaces the transcript with the stored history of conversationID.
func (d *Dispatcher) LoadHistory(ctx context.Context, conversationID string) error {
	return d.run(ctx, task{
		op:             session.OpLoadHistory,
		conversationID: conversationID,
		prepare:        requireConversation(conversationID),
		call: func(ctx context.Context) (session.Result, error) {
			msgs, err := d.backend.FetchHistory(ctx, conversationID)
			if err != nil {
				return nil, err
			}
			return session.HistoryLoaded{Messages: msgs}, nil
		},
	})
}

// OpenConversation selects conversationID and refreshes its transcript and
// documents concurrently. Both fetches run to completion; the first error is
// returned.
func (d *Dispatcher) OpenConversation(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return precondition("conversation id is required")
	}
	d.SelectConversation(conversationID)

	var g errgroup.Group
	g.Go(func() error { return d.LoadHistory(ctx, conversationID) })
	g.Go(func() error { return d.FetchDocuments(ctx, conversationID) })
	return g.Wait()
}
