package repository

import (
	"context"

	"rag-assistant/client/internal/model"
)

// JournalRepository stores the lifecycle journal.
type JournalRepository interface {
	Insert(ctx context.Context, entry *model.JournalEntry) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]model.JournalEntry, error)
	// ByRequest returns every entry of one request in the order they were written.
	ByRequest(ctx context.Context, requestID string) ([]model.JournalEntry, error)
	// Prune deletes all but the newest keep entries.
	Prune(ctx context.Context, keep int) (int64, error)
}
