package repository

import (
	"context"
	"database/sql"
	"fmt"

	"rag-assistant/client/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) JournalRepository {
	return &sqliteRepository{db: db}
}

const journalColumns = "id, request_id, op, phase, conversation_id, stale, detail, created_at"

func (r *sqliteRepository) Insert(ctx context.Context, entry *model.JournalEntry) error {
	query := `
		INSERT INTO journal (request_id, op, phase, conversation_id, stale, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		entry.RequestID,
		entry.Op,
		entry.Phase,
		nullString(entry.ConversationID),
		entry.Stale,
		nullString(entry.Detail),
		entry.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("could not insert journal entry: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

func (r *sqliteRepository) Recent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	query := "SELECT " + journalColumns + " FROM journal ORDER BY id DESC LIMIT ?"
	return r.query(ctx, query, limit)
}

func (r *sqliteRepository) ByRequest(ctx context.Context, requestID string) ([]model.JournalEntry, error) {
	query := "SELECT " + journalColumns + " FROM journal WHERE request_id = ? ORDER BY id ASC"
	entries, err := r.query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}

func (r *sqliteRepository) Prune(ctx context.Context, keep int) (int64, error) {
	query := "DELETE FROM journal WHERE id NOT IN (SELECT id FROM journal ORDER BY id DESC LIMIT ?)"
	res, err := r.db.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("could not prune journal: %w", err)
	}
	return res.RowsAffected()
}

func (r *sqliteRepository) query(ctx context.Context, query string, args ...any) ([]model.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.JournalEntry{}
	for rows.Next() {
		var (
			e              model.JournalEntry
			conversationID sql.NullString
			detail         sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Op, &e.Phase, &conversationID, &e.Stale, &detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.ConversationID = conversationID.String
		e.Detail = detail.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
