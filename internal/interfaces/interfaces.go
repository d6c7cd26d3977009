package interfaces

import (
	"context"

	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/service"
	"rag-assistant/client/internal/session"
)

// The api layer depends on these contracts rather than on the concrete
// dispatcher, dialog and repository, so handlers can be tested with mocks.

// SessionService drives the session: it exposes the state and every operation on it.
type SessionService interface {
	Snapshot() session.State
	Subscribe() (<-chan session.State, func())

	CreateConversation(ctx context.Context) error
	ListConversations(ctx context.Context) error
	DeleteConversation(ctx context.Context, conversationID string) error
	SelectConversation(conversationID string) session.State
	OpenConversation(ctx context.Context, conversationID string) error
	LoadHistory(ctx context.Context, conversationID string) error

	FetchDocuments(ctx context.Context, conversationID string) error
	UploadFiles(ctx context.Context, conversationID string, files ...gateway.File) error
	IngestURL(ctx context.Context, conversationID, rawURL string) error
	SearchTopic(ctx context.Context, topic string, seenURLs ...string) error
	IngestTopic(ctx context.Context, conversationID, topic string, selectedURLs []string) error
	ToggleDocument(name string) session.State
	RemoveDocument(name string) session.State
	ClearTopicResults() session.State

	SendMessage(ctx context.Context, query string) error
	DismissError() session.State
}

// FeedbackDialog is the local "rate this answer" flow.
type FeedbackDialog interface {
	Open(conversationID, messageID string) error
	SetRating(rating int) error
	Submit(ctx context.Context) error
	Close()
	View() service.FeedbackView
}

// JournalReader reads the lifecycle journal.
type JournalReader interface {
	Recent(ctx context.Context, limit int) ([]model.JournalEntry, error)
	ByRequest(ctx context.Context, requestID string) ([]model.JournalEntry, error)
}

var (
	_ SessionService = (*service.Dispatcher)(nil)
	_ FeedbackDialog = (*service.FeedbackDialog)(nil)
)
