package gateway

import (
	"io"
	"time"
)

// Wire shapes of the backend contract.

type createConversationRequest struct {
	UserID *string `json:"user_id"`
}

type conversationResponse struct {
	ConversationID string  `json:"conversation_id"`
	Response       *string `json:"response"`
	Title          *string `json:"title"`
}

type conversationItem struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

type conversationListResponse struct {
	Conversations []conversationItem `json:"conversations"`
}

type historyMessage struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`
}

type historyResponse struct {
	ConversationID string           `json:"conversation_id"`
	Messages       []historyMessage `json:"messages"`
}

type uploadResponse struct {
	DocumentNames []string `json:"document_names"`
}

type documentsResponse struct {
	ConversationID string   `json:"conversation_id"`
	Documents      []string `json:"documents"`
}

type ingestURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type searchTopicRequest struct {
	Topic    string   `json:"topic" validate:"required"`
	SeenURLs []string `json:"seen_urls"`
}

type searchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type searchTopicResponse struct {
	Results []searchResult `json:"results"`
}

type ingestTopicRequest struct {
	Topic        string   `json:"topic" validate:"required"`
	SelectedURLs []string `json:"selected_urls,omitempty" validate:"dive,url"`
}

type sendMessageRequest struct {
	UserQuery         string   `json:"user_query" validate:"required"`
	SelectedDocuments []string `json:"selected_documents" validate:"min=1"`
}

// FeedbackRequest rates one assistant answer.
type FeedbackRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	MessageID      string `json:"message_id" validate:"required"`
	Rating         int    `json:"rating" validate:"min=1,max=5"`
}

// File is one binary payload for an upload call.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Answer is the backend's reply to a sent message.
type Answer struct {
	ConversationID string
	Response       string
	Title          string
}
