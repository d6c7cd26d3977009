package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/service"
)

func TestCreateConversation(t *testing.T) {
	t.Run("Success makes the new conversation current", func(t *testing.T) {
		d, store, backend := setupDispatcher(t, service.Options{UserID: "u-42"})
		readyToSend(store)
		backend.On("CreateConversation", mock.Anything, "u-42").
			Return(model.Conversation{ID: "c2", Title: "New chat"}, nil).Once()

		require.NoError(t, d.CreateConversation(context.Background()))

		st := store.Snapshot()
		assert.Equal(t, "c2", st.CurrentConversationID)
		assert.Equal(t, []model.Conversation{{ID: "c2", Title: "New chat"}}, st.Conversations)
		assert.Empty(t, st.Messages)
		assert.Empty(t, st.Documents)
		assert.Zero(t, st.SelectedDocuments.Len())
	})

	t.Run("Failure leaves the session unchanged", func(t *testing.T) {
		d, store, backend := setupDispatcher(t, service.Options{})
		readyToSend(store)
		backend.On("CreateConversation", mock.Anything, "").
			Return(model.Conversation{}, backendError(503, "db locked")).Once()

		err := d.CreateConversation(context.Background())

		assert.ErrorIs(t, err, app_errors.ErrBackend)
		st := store.Snapshot()
		assert.Equal(t, "c1", st.CurrentConversationID)
		assert.True(t, st.SelectedDocuments.Contains("a.pdf"))
		assert.Equal(t, "db locked", st.Error.Detail)
	})
}

func TestDeleteConversation(t *testing.T) {
	t.Run("Empty id never reaches the backend", func(t *testing.T) {
		d, _, _ := setupDispatcher(t, service.Options{})

		err := d.DeleteConversation(context.Background(), "")

		assert.ErrorIs(t, err, app_errors.ErrPrecondition)
	})

	t.Run("Deleting the current conversation clears it", func(t *testing.T) {
		d, store, backend := setupDispatcher(t, service.Options{})
		backend.On("ListConversations", mock.Anything).
			Return([]model.Conversation{{ID: "c1"}, {ID: "c2"}}, nil).Once()
		backend.On("DeleteConversation", mock.Anything, "c1").Return(nil).Once()
		require.NoError(t, d.ListConversations(context.Background()))
		readyToSend(store)

		require.NoError(t, d.DeleteConversation(context.Background(), "c1"))

		st := store.Snapshot()
		assert.Empty(t, st.CurrentConversationID)
		assert.Equal(t, []model.Conversation{{ID: "c2"}}, st.Conversations)
		assert.Zero(t, st.SelectedDocuments.Len())
	})
}

func TestOpenConversation(t *testing.T) {
	d, store, backend := setupDispatcher(t, service.Options{Fencing: true})
	backend.On("FetchHistory", mock.Anything, "c7").
		Return([]model.Message{{ID: "m1", Role: model.RoleUser, Content: "hi"}}, nil).Once()
	backend.On("FetchDocuments", mock.Anything, "c7").
		Return([]string{"a.pdf", "b.pdf"}, nil).Once()

	require.NoError(t, d.OpenConversation(context.Background(), "c7"))

	st := store.Snapshot()
	assert.Equal(t, "c7", st.CurrentConversationID)
	assert.Len(t, st.Messages, 1)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, st.Documents)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Pending)
}

func TestOpenConversation_PartialFailure(t *testing.T) {
	d, store, backend := setupDispatcher(t, service.Options{Fencing: true})
	backend.On("FetchHistory", mock.Anything, "c7").
		Return(nil, backendError(500, "history broken")).Once()
	backend.On("FetchDocuments", mock.Anything, "c7").
		Return([]string{"a.pdf"}, nil).Once()

	err := d.OpenConversation(context.Background(), "c7")

	assert.ErrorIs(t, err, app_errors.ErrBackend)
	st := store.Snapshot()
	assert.Equal(t, []string{"a.pdf"}, st.Documents, "the sibling fetch still lands")
	assert.Equal(t, "history broken", st.Error.Detail)
}

func TestSelectConversation_DoesNotFetch(t *testing.T) {
	d, _, _ := setupDispatcher(t, service.Options{})

	st := d.SelectConversation("c3")

	assert.Equal(t, "c3", st.CurrentConversationID)
	assert.Empty(t, st.Messages)
}
