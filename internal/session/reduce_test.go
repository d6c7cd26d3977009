package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assistant/client/internal/model"
	"rag-assistant/client/internal/session"
)

// populated returns a state with conversation "c1" current and a non-empty
// transcript and document set.
func populated() session.State {
	s := session.NewState()
	s = session.Reduce(s, session.Succeeded{
		Request: session.Request{ID: "r0", Op: session.OpListConversations},
		Result: session.ConversationsListed{Conversations: []model.Conversation{
			{ID: "c1", Title: "First"}, {ID: "c2", Title: "Second"},
		}},
	})
	s = session.Reduce(s, session.SelectConversation{ID: "c1"})
	s = session.Reduce(s, session.EchoUserMessage{Message: model.Message{ID: "m1", Role: model.RoleUser, Content: "hi"}})
	s = session.Reduce(s, session.Succeeded{
		Request: session.Request{ID: "r1", Op: session.OpFetchDocuments, ConversationID: "c1", Epoch: s.Epoch},
		Result:  session.DocumentsFetched{Documents: []string{"a.pdf", "b.txt"}},
	})
	s = session.Reduce(s, session.ToggleDocument{Name: "a.pdf"})
	return s
}

func TestReduce_CreateConversationClearsScopedState(t *testing.T) {
	// ARRANGE
	s := populated()
	require.NotEmpty(t, s.Messages)

	// ACT
	next := session.Reduce(s, session.Succeeded{
		Request: session.Request{ID: "r2", Op: session.OpCreateConversation},
		Result:  session.ConversationCreated{Conversation: model.Conversation{ID: "c3"}},
	})

	// ASSERT
	assert.Equal(t, "c3", next.CurrentConversationID)
	assert.Empty(t, next.Messages)
	assert.Empty(t, next.Documents)
	assert.Zero(t, next.SelectedDocuments.Len())
	assert.Len(t, next.Conversations, 3)
	assert.Equal(t, "c3", next.Conversations[2].ID)
	assert.Greater(t, next.Epoch, s.Epoch)

	// The previous snapshot is untouched.
	assert.Len(t, s.Messages, 1)
	assert.Len(t, s.Conversations, 2)
}

func TestReduce_DeleteConversation(t *testing.T) {
	t.Run("Current conversation clears scoped state", func(t *testing.T) {
		s := populated()

		next := session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "r2", Op: session.OpDeleteConversation, ConversationID: "c1"},
			Result:  session.ConversationDeleted{ID: "c1"},
		})

		assert.Empty(t, next.CurrentConversationID)
		assert.Empty(t, next.Messages)
		assert.Empty(t, next.Documents)
		assert.Zero(t, next.SelectedDocuments.Len())
		_, listed := next.Conversation("c1")
		assert.False(t, listed)
	})

	t.Run("Other conversation is inert", func(t *testing.T) {
		s := populated()

		next := session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "r2", Op: session.OpDeleteConversation, ConversationID: "c2"},
			Result:  session.ConversationDeleted{ID: "c2"},
		})

		assert.Equal(t, "c1", next.CurrentConversationID)
		assert.Equal(t, s.Messages, next.Messages)
		assert.Equal(t, s.Documents, next.Documents)
		assert.True(t, s.SelectedDocuments.Equal(next.SelectedDocuments))
		assert.Equal(t, s.Epoch, next.Epoch)
		require.Len(t, next.Conversations, 1)
		assert.Equal(t, "c1", next.Conversations[0].ID)
	})
}

func TestReduce_ListConversationsKeepsSelection(t *testing.T) {
	s := populated()

	next := session.Reduce(s, session.Succeeded{
		Request: session.Request{ID: "r2", Op: session.OpListConversations},
		Result:  session.ConversationsListed{Conversations: []model.Conversation{{ID: "c9"}}},
	})

	assert.Equal(t, []model.Conversation{{ID: "c9"}}, next.Conversations)
	assert.Equal(t, "c1", next.CurrentConversationID)
}

func TestReduce_SelectConversationDoesNotReload(t *testing.T) {
	s := populated()

	next := session.Reduce(s, session.SelectConversation{ID: "c2"})

	assert.Equal(t, "c2", next.CurrentConversationID)
	assert.Equal(t, s.Epoch+1, next.Epoch)
	assert.Equal(t, s.Messages, next.Messages)
	assert.Equal(t, s.Documents, next.Documents)

	again := session.Reduce(next, session.SelectConversation{ID: "c2"})
	assert.Equal(t, next.Epoch, again.Epoch, "reselecting the same conversation keeps the epoch")
}

func TestReduce_SharedLoadingFlag(t *testing.T) {
	// ARRANGE: two calls of the same category in flight.
	s := session.NewState()
	list := session.Request{ID: "list", Op: session.OpListConversations}
	create := session.Request{ID: "create", Op: session.OpCreateConversation}
	s = session.Reduce(s, session.Started{Request: list})
	s = session.Reduce(s, session.Started{Request: create})
	require.True(t, s.IsLoading)
	require.Len(t, s.Pending, 2)

	// ACT: only one of them finishes.
	s = session.Reduce(s, session.Succeeded{Request: list, Result: session.ConversationsListed{}})

	// ASSERT: the coarse flag reports idle while the per-call map does not.
	assert.False(t, s.IsLoading)
	assert.Equal(t, 1, s.InFlight(session.OpCreateConversation))
	assert.Contains(t, s.Pending, "create")
}

func TestReduce_CategoriesAreIndependent(t *testing.T) {
	s := session.NewState()
	s = session.Reduce(s, session.Started{Request: session.Request{ID: "s", Op: session.OpSendMessage}})
	s = session.Reduce(s, session.Started{Request: session.Request{ID: "u", Op: session.OpUploadFile}})
	s = session.Reduce(s, session.Started{Request: session.Request{ID: "q", Op: session.OpSearchTopic}})

	assert.True(t, s.IsSending)
	assert.True(t, s.IsUploading)
	assert.True(t, s.IsSearching)
	assert.False(t, s.IsLoading)

	s = session.Reduce(s, session.Failed{Request: session.Request{ID: "u", Op: session.OpUploadFile}, Failure: model.Failure{Detail: "boom"}})
	assert.False(t, s.IsUploading)
	assert.True(t, s.IsSending)
	assert.True(t, s.IsSearching)
}

func TestReduce_ErrorSlotKeepsMostRecentFailure(t *testing.T) {
	s := session.NewState()
	s = session.Reduce(s, session.Failed{
		Request: session.Request{ID: "a", Op: session.OpSearchTopic},
		Failure: model.Failure{Status: 500, Detail: "search down"},
	})
	s = session.Reduce(s, session.Failed{
		Request: session.Request{ID: "b", Op: session.OpListConversations},
		Failure: model.Failure{Detail: "connection refused"},
	})

	require.NotNil(t, s.Error)
	assert.Equal(t, "connection refused", s.Error.Detail)

	s = session.Reduce(s, session.DismissError{})
	assert.Nil(t, s.Error)
}

func TestReduce_FeedbackFailureDoesNotTouchErrorSlot(t *testing.T) {
	s := session.NewState()
	req := session.Request{ID: "f", Op: session.OpSubmitFeedback}
	s = session.Reduce(s, session.Started{Request: req})
	require.True(t, s.IsLoading)

	s = session.Reduce(s, session.Failed{Request: req, Failure: model.Failure{Detail: "nope"}})

	assert.False(t, s.IsLoading)
	assert.Nil(t, s.Error)
}

func TestReduce_MessageExchange(t *testing.T) {
	t.Run("Answer follows the echo", func(t *testing.T) {
		s := populated()
		s = session.Reduce(s, session.EchoUserMessage{Message: model.Message{ID: "u2", Role: model.RoleUser, Content: "What is X?"}})

		s = session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "r", Op: session.OpSendMessage, ConversationID: "c1", Epoch: s.Epoch, Fence: true},
			Result:  session.MessageAnswered{MessageID: "a2", Answer: "X is Y"},
		})

		require.Len(t, s.Messages, 3)
		assert.Equal(t, model.Message{ID: "u2", Role: model.RoleUser, Content: "What is X?"}, s.Messages[1])
		assert.Equal(t, model.Message{ID: "a2", Role: model.RoleAssistant, Content: "X is Y"}, s.Messages[2])
	})

	t.Run("Empty answer appends nothing", func(t *testing.T) {
		s := populated()

		next := session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "r", Op: session.OpSendMessage, ConversationID: "c1", Epoch: s.Epoch},
			Result:  session.MessageAnswered{MessageID: "a2"},
		})

		assert.Equal(t, s.Messages, next.Messages)
		assert.Nil(t, next.Error)
	})

	t.Run("Failure keeps the echo", func(t *testing.T) {
		s := populated()

		next := session.Reduce(s, session.Failed{
			Request: session.Request{ID: "r", Op: session.OpSendMessage, ConversationID: "c1", Epoch: s.Epoch},
			Failure: model.Failure{Status: 400, Detail: "No document selected for this query"},
		})

		assert.Equal(t, s.Messages, next.Messages)
		require.NotNil(t, next.Error)
		assert.Equal(t, 400, next.Error.Status)
	})

	t.Run("Title from the answer renames the conversation", func(t *testing.T) {
		s := populated()

		next := session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "r", Op: session.OpSendMessage, ConversationID: "c1", Epoch: s.Epoch},
			Result:  session.MessageAnswered{MessageID: "a2", Answer: "ok", Title: "Renamed"},
		})

		c, ok := next.Conversation("c1")
		require.True(t, ok)
		assert.Equal(t, "Renamed", c.Title)
		old, _ := s.Conversation("c1")
		assert.Equal(t, "First", old.Title)
	})
}

func TestReduce_StaleHistory(t *testing.T) {
	// loadHistory("A") is issued, then the user switches to "B" before it resolves.
	issue := func(fence bool) (session.State, session.Request) {
		s := session.NewState()
		s = session.Reduce(s, session.SelectConversation{ID: "A"})
		req := session.Request{ID: "h", Op: session.OpLoadHistory, ConversationID: "A", Epoch: s.Epoch, Fence: fence}
		s = session.Reduce(s, session.Started{Request: req})
		s = session.Reduce(s, session.SelectConversation{ID: "B"})
		return s, req
	}
	late := session.HistoryLoaded{Messages: []model.Message{{ID: "m1", Role: model.RoleUser, Content: "from A"}}}

	t.Run("Fenced result is discarded", func(t *testing.T) {
		s, req := issue(true)

		s = session.Reduce(s, session.Succeeded{Request: req, Result: late})

		assert.Empty(t, s.Messages)
		assert.False(t, s.IsLoading)
		assert.NotContains(t, s.Pending, "h")
	})

	t.Run("Unfenced result overwrites the transcript", func(t *testing.T) {
		s, req := issue(false)

		s = session.Reduce(s, session.Succeeded{Request: req, Result: late})

		assert.Equal(t, "B", s.CurrentConversationID)
		assert.Equal(t, late.Messages, s.Messages)
	})

	t.Run("Fenced failure is not surfaced", func(t *testing.T) {
		s, req := issue(true)

		s = session.Reduce(s, session.Failed{Request: req, Failure: model.Failure{Detail: "gone"}})

		assert.Nil(t, s.Error)
	})

	t.Run("Request for another conversation is discarded at the current epoch", func(t *testing.T) {
		// Select A, select B, then load A: the epoch observed is B's.
		s := session.NewState()
		s = session.Reduce(s, session.SelectConversation{ID: "A"})
		s = session.Reduce(s, session.SelectConversation{ID: "B"})
		req := session.Request{ID: "h", Op: session.OpLoadHistory, ConversationID: "A", Epoch: s.Epoch, Fence: true}
		s = session.Reduce(s, session.Started{Request: req})

		s = session.Reduce(s, session.Succeeded{Request: req, Result: late})

		assert.True(t, s.Superseded(req))
		assert.Equal(t, "B", s.CurrentConversationID)
		assert.Empty(t, s.Messages)
		assert.False(t, s.IsLoading)
	})
}

func TestState_Superseded(t *testing.T) {
	s := session.Reduce(session.NewState(), session.SelectConversation{ID: "A"})

	tests := []struct {
		name string
		req  session.Request
		want bool
	}{
		{"Current conversation and epoch", session.Request{ConversationID: "A", Epoch: s.Epoch, Fence: true}, false},
		{"Older epoch", session.Request{ConversationID: "A", Epoch: s.Epoch - 1, Fence: true}, true},
		{"Other conversation", session.Request{ConversationID: "B", Epoch: s.Epoch, Fence: true}, true},
		{"Unfenced", session.Request{ConversationID: "B", Epoch: s.Epoch - 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Superseded(tt.req))
		})
	}
}

func TestReduce_Documents(t *testing.T) {
	t.Run("Uploads accumulate", func(t *testing.T) {
		s := populated()

		s = session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "u1", Op: session.OpUploadFile, Epoch: s.Epoch},
			Result:  session.FileUploaded{FileName: "c.md", Documents: []string{"c.md"}},
		})

		assert.Equal(t, []string{"a.pdf", "b.txt", "c.md"}, s.Documents)
		assert.False(t, s.SelectedDocuments.Contains("c.md"))
	})

	t.Run("Auto-select adds the uploaded name", func(t *testing.T) {
		s := populated()

		s = session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "u1", Op: session.OpUploadFile, Epoch: s.Epoch},
			Result:  session.FileUploaded{FileName: "c.md", Documents: []string{"a.pdf", "b.txt", "c.md"}, AutoSelect: true},
		})

		assert.True(t, s.SelectedDocuments.Contains("c.md"))
		assert.True(t, s.SelectedDocuments.Contains("a.pdf"))
	})

	t.Run("Fetch replaces wholesale", func(t *testing.T) {
		s := populated()

		s = session.Reduce(s, session.Succeeded{
			Request: session.Request{ID: "d", Op: session.OpFetchDocuments, Epoch: s.Epoch},
			Result:  session.DocumentsFetched{Documents: []string{"z.pdf"}},
		})

		assert.Equal(t, []string{"z.pdf"}, s.Documents)
		assert.True(t, s.SelectedDocuments.Contains("a.pdf"), "selection is not tied to the document list")
	})

	t.Run("Remove drops the document and its selection", func(t *testing.T) {
		s := populated()

		s = session.Reduce(s, session.RemoveDocument{Name: "a.pdf"})

		assert.Equal(t, []string{"b.txt"}, s.Documents)
		assert.False(t, s.SelectedDocuments.Contains("a.pdf"))
	})
}

func TestReduce_TopicResults(t *testing.T) {
	s := session.NewState()
	results := []model.TopicResult{{Title: "Go", URL: "https://go.dev"}}

	s = session.Reduce(s, session.Succeeded{
		Request: session.Request{ID: "q", Op: session.OpSearchTopic},
		Result:  session.TopicSearched{Results: results},
	})
	assert.Equal(t, results, s.TopicResults)

	s = session.Reduce(s, session.Succeeded{
		Request: session.Request{ID: "i", Op: session.OpIngestTopic, ConversationID: "c1"},
		Result:  session.TopicIngested{},
	})
	assert.Empty(t, s.TopicResults)

	s = session.Reduce(s, session.Succeeded{
		Request: session.Request{ID: "q2", Op: session.OpSearchTopic},
		Result:  session.TopicSearched{Results: results},
	})
	s = session.Reduce(s, session.ClearTopicResults{})
	assert.Empty(t, s.TopicResults)
}

func TestState_CanSend(t *testing.T) {
	s := session.NewState()
	assert.False(t, s.CanSend())

	s = session.Reduce(s, session.SelectConversation{ID: "c1"})
	assert.False(t, s.CanSend(), "no documents selected")

	s = session.Reduce(s, session.ToggleDocument{Name: "a.pdf"})
	assert.True(t, s.CanSend())
}
