package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/repository"
	"rag-assistant/client/internal/session"
)

const (
	journalBuffer     = 256
	journalKeep       = 10000
	journalPruneEvery = 500
)

// Journal records the lifecycle of every dispatched call. It implements
// session.Observer; entries are queued without blocking and written by a
// background goroutine. When the queue is full entries are dropped.
type Journal struct {
	repo    repository.JournalRepository
	entries chan model.JournalEntry
	done    chan struct{}
	dropped atomic.Int64

	mu     sync.Mutex
	closed bool
}

// NewJournal starts the writer. Close must be called to stop it.
func NewJournal(repo repository.JournalRepository) *Journal {
	j := &Journal{
		repo:    repo,
		entries: make(chan model.JournalEntry, journalBuffer),
		done:    make(chan struct{}),
	}
	go j.write()
	return j
}

// Observe implements session.Observer.
func (j *Journal) Observe(a session.Action, next session.State) {
	entry, ok := journalEntry(a, next)
	if !ok {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed {
		return
	}
	select {
	case j.entries <- entry:
	default:
		j.dropped.Add(1)
	}
}

// Dropped reports how many entries were lost to a full queue.
func (j *Journal) Dropped() int64 {
	return j.dropped.Load()
}

// Close flushes queued entries and stops the writer.
func (j *Journal) Close() {
	j.mu.Lock()
	if !j.closed {
		j.closed = true
		close(j.entries)
	}
	j.mu.Unlock()
	<-j.done
}

func (j *Journal) write() {
	defer close(j.done)
	written := 0
	for entry := range j.entries {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := j.repo.Insert(ctx, &entry); err != nil {
			slog.Warn("Failed to write journal entry", "request_id", entry.RequestID, "error", err)
		}
		written++
		if written%journalPruneEvery == 0 {
			if n, err := j.repo.Prune(ctx, journalKeep); err != nil {
				slog.Warn("Failed to prune journal", "error", err)
			} else if n > 0 {
				slog.Debug("Pruned journal", "deleted", n)
			}
		}
		cancel()
	}
}

func journalEntry(a session.Action, next session.State) (model.JournalEntry, bool) {
	var (
		req    session.Request
		phase  model.JournalPhase
		detail string
	)
	switch a := a.(type) {
	case session.Started:
		req, phase = a.Request, model.PhaseStarted
	case session.Succeeded:
		req, phase = a.Request, model.PhaseSucceeded
	case session.Failed:
		req, phase, detail = a.Request, model.PhaseFailed, a.Failure.Detail
	default:
		return model.JournalEntry{}, false
	}
	return model.JournalEntry{
		RequestID:      req.ID,
		Op:             string(req.Op),
		Phase:          phase,
		ConversationID: req.ConversationID,
		Stale:          phase != model.PhaseStarted && next.Superseded(req),
		Detail:         detail,
		CreatedAt:      time.Now(),
	}, true
}
