package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/repository"
)

func setupRepository(t *testing.T) (repository.JournalRepository, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db), mockDB
}

var journalRowColumns = []string{"id", "request_id", "op", "phase", "conversation_id", "stale", "detail", "created_at"}

func TestJournal_Insert(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		entry := &model.JournalEntry{RequestID: "r1", Op: "load_history", Phase: model.PhaseStarted, ConversationID: "c1", CreatedAt: at}

		mockDB.ExpectExec(regexp.QuoteMeta("INSERT INTO journal")).
			WithArgs("r1", "load_history", model.PhaseStarted, sql.NullString{String: "c1", Valid: true}, false, sql.NullString{}, at).
			WillReturnResult(sqlmock.NewResult(7, 1))

		require.NoError(t, repo.Insert(ctx, entry))
		assert.Equal(t, int64(7), entry.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		mockDB.ExpectExec("INSERT INTO journal").WillReturnError(sql.ErrConnDone)

		err := repo.Insert(ctx, &model.JournalEntry{RequestID: "r1", CreatedAt: at})

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestJournal_Recent(t *testing.T) {
	repo, mockDB := setupRepository(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(journalRowColumns).
		AddRow(2, "r1", "send_message", "failed", "c1", false, "llm offline", at).
		AddRow(1, "r1", "send_message", "started", "c1", false, nil, at)

	mockDB.ExpectQuery(regexp.QuoteMeta("FROM journal ORDER BY id DESC LIMIT ?")).WithArgs(10).WillReturnRows(rows)

	entries, err := repo.Recent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.PhaseFailed, entries[0].Phase)
	assert.Equal(t, "llm offline", entries[0].Detail)
	assert.Empty(t, entries[1].Detail)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestJournal_ByRequest(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		rows := sqlmock.NewRows(journalRowColumns).
			AddRow(1, "r9", "load_history", "started", "A", false, nil, time.Now()).
			AddRow(2, "r9", "load_history", "succeeded", "A", true, nil, time.Now())
		mockDB.ExpectQuery("WHERE request_id = ?").WithArgs("r9").WillReturnRows(rows)

		entries, err := repo.ByRequest(context.Background(), "r9")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[1].Stale)
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mockDB := setupRepository(t)
		mockDB.ExpectQuery("WHERE request_id = ?").WithArgs("nope").WillReturnRows(sqlmock.NewRows(journalRowColumns))

		_, err := repo.ByRequest(context.Background(), "nope")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestJournal_Prune(t *testing.T) {
	repo, mockDB := setupRepository(t)
	mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM journal WHERE id NOT IN")).WithArgs(100).
		WillReturnResult(sqlmock.NewResult(0, 42))

	n, err := repo.Prune(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}
