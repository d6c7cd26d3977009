// Package mocks holds testify mocks for the api contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/interfaces"
	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/service"
	"rag-assistant/client/internal/session"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockSessionService is a testify mock of interfaces.SessionService.
type MockSessionService struct {
	mock.Mock
}

var _ interfaces.SessionService = (*MockSessionService)(nil)

func NewMockSessionService(t testingT) *MockSessionService {
	m := &MockSessionService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSessionService) Snapshot() session.State {
	return m.Called().Get(0).(session.State)
}

func (m *MockSessionService) Subscribe() (<-chan session.State, func()) {
	args := m.Called()
	return args.Get(0).(<-chan session.State), args.Get(1).(func())
}

func (m *MockSessionService) CreateConversation(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSessionService) ListConversations(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSessionService) DeleteConversation(ctx context.Context, conversationID string) error {
	return m.Called(ctx, conversationID).Error(0)
}

func (m *MockSessionService) SelectConversation(conversationID string) session.State {
	return m.Called(conversationID).Get(0).(session.State)
}

func (m *MockSessionService) OpenConversation(ctx context.Context, conversationID string) error {
	return m.Called(ctx, conversationID).Error(0)
}

func (m *MockSessionService) LoadHistory(ctx context.Context, conversationID string) error {
	return m.Called(ctx, conversationID).Error(0)
}

func (m *MockSessionService) FetchDocuments(ctx context.Context, conversationID string) error {
	return m.Called(ctx, conversationID).Error(0)
}

func (m *MockSessionService) UploadFiles(ctx context.Context, conversationID string, files ...gateway.File) error {
	return m.Called(ctx, conversationID, files).Error(0)
}

func (m *MockSessionService) IngestURL(ctx context.Context, conversationID, rawURL string) error {
	return m.Called(ctx, conversationID, rawURL).Error(0)
}

func (m *MockSessionService) SearchTopic(ctx context.Context, topic string, seenURLs ...string) error {
	return m.Called(ctx, topic, seenURLs).Error(0)
}

func (m *MockSessionService) IngestTopic(ctx context.Context, conversationID, topic string, selectedURLs []string) error {
	return m.Called(ctx, conversationID, topic, selectedURLs).Error(0)
}

func (m *MockSessionService) ToggleDocument(name string) session.State {
	return m.Called(name).Get(0).(session.State)
}

func (m *MockSessionService) RemoveDocument(name string) session.State {
	return m.Called(name).Get(0).(session.State)
}

func (m *MockSessionService) ClearTopicResults() session.State {
	return m.Called().Get(0).(session.State)
}

func (m *MockSessionService) SendMessage(ctx context.Context, query string) error {
	return m.Called(ctx, query).Error(0)
}

func (m *MockSessionService) DismissError() session.State {
	return m.Called().Get(0).(session.State)
}

// MockFeedbackDialog is a testify mock of interfaces.FeedbackDialog.
type MockFeedbackDialog struct {
	mock.Mock
}

var _ interfaces.FeedbackDialog = (*MockFeedbackDialog)(nil)

func NewMockFeedbackDialog(t testingT) *MockFeedbackDialog {
	m := &MockFeedbackDialog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFeedbackDialog) Open(conversationID, messageID string) error {
	return m.Called(conversationID, messageID).Error(0)
}

func (m *MockFeedbackDialog) SetRating(rating int) error {
	return m.Called(rating).Error(0)
}

func (m *MockFeedbackDialog) Submit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFeedbackDialog) Close() {
	m.Called()
}

func (m *MockFeedbackDialog) View() service.FeedbackView {
	return m.Called().Get(0).(service.FeedbackView)
}

// MockJournalReader is a testify mock of interfaces.JournalReader.
type MockJournalReader struct {
	mock.Mock
}

var _ interfaces.JournalReader = (*MockJournalReader)(nil)

func NewMockJournalReader(t testingT) *MockJournalReader {
	m := &MockJournalReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockJournalReader) Recent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]model.JournalEntry)
	return entries, args.Error(1)
}

func (m *MockJournalReader) ByRequest(ctx context.Context, requestID string) ([]model.JournalEntry, error) {
	args := m.Called(ctx, requestID)
	entries, _ := args.Get(0).([]model.JournalEntry)
	return entries, args.Error(1)
}
