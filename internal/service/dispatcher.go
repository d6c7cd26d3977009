package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/session"
)

// Options tunes the dispatcher.
type Options struct {
	// UserID is sent when creating conversations.
	UserID string
	// Fencing discards conversation-scoped results that resolve after the
	// user has switched conversations.
	Fencing bool
	// AutoSelectUploads adds every uploaded file to the document selection.
	AutoSelectUploads bool
	// NewID generates message and request ids. Defaults to uuid.NewString.
	NewID func() string
}

// Dispatcher runs asynchronous operations against the backend and feeds
// their lifecycle (started, then succeeded or failed) into the session
// store. Operation methods block until the backend resolves; callers that
// want concurrency run them on their own goroutines.
type Dispatcher struct {
	store   *session.Store
	backend gateway.Backend
	opts    Options
	newID   func() string
	now     func() time.Time
}

func NewDispatcher(store *session.Store, backend gateway.Backend, opts Options) *Dispatcher {
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Dispatcher{
		store:   store,
		backend: backend,
		opts:    opts,
		newID:   newID,
		now:     time.Now,
	}
}

// Snapshot returns the current session state.
func (d *Dispatcher) Snapshot() session.State {
	return d.store.Snapshot()
}

// Subscribe forwards to the store.
func (d *Dispatcher) Subscribe() (<-chan session.State, func()) {
	return d.store.Subscribe()
}

// task describes one dispatched call.
type task struct {
	op             session.Op
	conversationID string
	// current targets whatever conversation is current when the call starts.
	current bool
	// prepare runs under the store lock before the call is started. It may
	// return actions to apply atomically with Started, or an error to skip
	// the call entirely.
	prepare func(st session.State) ([]session.Action, error)
	call    func(ctx context.Context) (session.Result, error)
}

// run drives t through its lifecycle.
func (d *Dispatcher) run(ctx context.Context, t task) error {
	var (
		req     session.Request
		skipped error
	)
	d.store.Apply(func(st session.State) []session.Action {
		var actions []session.Action
		if t.prepare != nil {
			pre, err := t.prepare(st)
			if err != nil {
				skipped = err
				return nil
			}
			actions = pre
		}
		conversationID := t.conversationID
		if t.current {
			conversationID = st.CurrentConversationID
		}
		req = session.Request{
			ID:             d.newID(),
			Op:             t.op,
			ConversationID: conversationID,
			Epoch:          st.Epoch,
			Fence:          d.opts.Fencing && t.op.ConversationScoped(),
			StartedAt:      d.now(),
		}
		return append(actions, session.Started{Request: req})
	})
	if skipped != nil {
		slog.Debug("Operation skipped", "op", t.op, "reason", skipped)
		return skipped
	}

	log := slog.With("request_id", req.ID, "op", t.op, "conversation_id", req.ConversationID)
	log.Debug("Operation started")

	result, err := t.call(ctx)
	if err != nil {
		next := d.store.Dispatch(session.Failed{Request: req, Failure: gateway.FailureFrom(err)})
		if discarded(req, next) {
			log.Info("Discarded failure of a superseded conversation", "error", err)
			return fmt.Errorf("%w: %v", app_errors.ErrStale, err)
		}
		log.Warn("Operation failed", "error", err, "elapsed", d.now().Sub(req.StartedAt))
		return err
	}

	next := d.store.Dispatch(session.Succeeded{Request: req, Result: result})
	if discarded(req, next) {
		log.Info("Discarded result of a superseded conversation", "current_conversation_id", next.CurrentConversationID)
		return fmt.Errorf("%w: %s", app_errors.ErrStale, t.op)
	}
	log.Debug("Operation succeeded", "elapsed", d.now().Sub(req.StartedAt))
	return nil
}

func discarded(req session.Request, next session.State) bool {
	return next.Superseded(req)
}

func precondition(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{app_errors.ErrPrecondition}, args...)...)
}

// requireConversation is the common ingestion and history gate.
func requireConversation(conversationID string) func(session.State) ([]session.Action, error) {
	return func(session.State) ([]session.Action, error) {
		if conversationID == "" {
			return nil, precondition("conversation id is required")
		}
		return nil, nil
	}
}
