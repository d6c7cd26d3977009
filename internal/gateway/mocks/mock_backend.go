// Package mocks holds testify mocks for the gateway contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/model"
)

// MockBackend is a testify mock of gateway.Backend.
type MockBackend struct {
	mock.Mock
}

var _ gateway.Backend = (*MockBackend)(nil)

// NewMockBackend creates a mock whose expectations are asserted when t finishes.
func NewMockBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBackend {
	m := &MockBackend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBackend) CreateConversation(ctx context.Context, userID string) (model.Conversation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Conversation), args.Error(1)
}

func (m *MockBackend) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	args := m.Called(ctx)
	convs, _ := args.Get(0).([]model.Conversation)
	return convs, args.Error(1)
}

func (m *MockBackend) DeleteConversation(ctx context.Context, conversationID string) error {
	return m.Called(ctx, conversationID).Error(0)
}

func (m *MockBackend) FetchHistory(ctx context.Context, conversationID string) ([]model.Message, error) {
	args := m.Called(ctx, conversationID)
	msgs, _ := args.Get(0).([]model.Message)
	return msgs, args.Error(1)
}

func (m *MockBackend) UploadDocument(ctx context.Context, conversationID string, file gateway.File) ([]string, error) {
	args := m.Called(ctx, conversationID, file)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockBackend) IngestURL(ctx context.Context, conversationID, rawURL string) error {
	return m.Called(ctx, conversationID, rawURL).Error(0)
}

func (m *MockBackend) SearchTopic(ctx context.Context, topic string, seenURLs []string) ([]model.TopicResult, error) {
	args := m.Called(ctx, topic, seenURLs)
	results, _ := args.Get(0).([]model.TopicResult)
	return results, args.Error(1)
}

func (m *MockBackend) IngestTopic(ctx context.Context, conversationID, topic string, selectedURLs []string) error {
	return m.Called(ctx, conversationID, topic, selectedURLs).Error(0)
}

func (m *MockBackend) FetchDocuments(ctx context.Context, conversationID string) ([]string, error) {
	args := m.Called(ctx, conversationID)
	docs, _ := args.Get(0).([]string)
	return docs, args.Error(1)
}

func (m *MockBackend) SendMessage(ctx context.Context, conversationID, query string, selectedDocuments []string) (gateway.Answer, error) {
	args := m.Called(ctx, conversationID, query, selectedDocuments)
	return args.Get(0).(gateway.Answer), args.Error(1)
}

func (m *MockBackend) SubmitFeedback(ctx context.Context, req gateway.FeedbackRequest) error {
	return m.Called(ctx, req).Error(0)
}
