// Package mocks holds testify mocks for the repository contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/repository"
)

// MockJournalRepository is a testify mock of repository.JournalRepository.
type MockJournalRepository struct {
	mock.Mock
}

var _ repository.JournalRepository = (*MockJournalRepository)(nil)

// NewMockJournalRepository creates a mock whose expectations are asserted when t finishes.
func NewMockJournalRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockJournalRepository {
	m := &MockJournalRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockJournalRepository) Insert(ctx context.Context, entry *model.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) Recent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]model.JournalEntry)
	return entries, args.Error(1)
}

func (m *MockJournalRepository) ByRequest(ctx context.Context, requestID string) ([]model.JournalEntry, error) {
	args := m.Called(ctx, requestID)
	entries, _ := args.Get(0).([]model.JournalEntry)
	return entries, args.Error(1)
}

func (m *MockJournalRepository) Prune(ctx context.Context, keep int) (int64, error) {
	args := m.Called(ctx, keep)
	return args.Get(0).(int64), args.Error(1)
}
