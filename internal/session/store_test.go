package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/client/internal/session"
)

type recordingObserver struct {
	mu      sync.Mutex
	actions []session.Action
}

func (o *recordingObserver) Observe(a session.Action, _ session.State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.actions = append(o.actions, a)
}

func TestStore_DispatchNotifiesObservers(t *testing.T) {
	obs := &recordingObserver{}
	store := session.NewStore(obs)

	next := store.Dispatch(session.SelectConversation{ID: "c1"})

	assert.Equal(t, "c1", next.CurrentConversationID)
	assert.Equal(t, next, store.Snapshot())
	require.Len(t, obs.actions, 1)
	assert.Equal(t, session.SelectConversation{ID: "c1"}, obs.actions[0])
}

func TestStore_SubscribeDeliversLatest(t *testing.T) {
	store := session.NewStore()
	ch, cancel := store.Subscribe()
	defer cancel()

	initial := <-ch
	assert.Empty(t, initial.CurrentConversationID)

	// Nobody reads while three actions land; only the last snapshot is kept.
	store.Dispatch(session.SelectConversation{ID: "a"})
	store.Dispatch(session.SelectConversation{ID: "b"})
	store.Dispatch(session.SelectConversation{ID: "c"})

	latest := <-ch
	assert.Equal(t, "c", latest.CurrentConversationID)

	cancel()
	_, open := <-ch
	assert.False(t, open)
	cancel()
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := session.NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(session.ToggleDocument{Name: "doc"})
		}()
	}
	wg.Wait()

	assert.False(t, store.Snapshot().SelectedDocuments.Contains("doc"), "an even number of toggles cancels out")
}

func TestStore_ApplyIsAtomic(t *testing.T) {
	obs := &recordingObserver{}
	store := session.NewStore(obs)
	store.Dispatch(session.SelectConversation{ID: "c1"})

	next := store.Apply(func(st session.State) []session.Action {
		assert.Equal(t, "c1", st.CurrentConversationID)
		return []session.Action{
			session.ToggleDocument{Name: "a"},
			session.ToggleDocument{Name: "b"},
		}
	})

	assert.Equal(t, []string{"a", "b"}, next.SelectedDocuments.Items())
	assert.Len(t, obs.actions, 3)

	unchanged := store.Apply(func(session.State) []session.Action { return nil })
	assert.Equal(t, next.SelectedDocuments.Items(), unchanged.SelectedDocuments.Items())
}
