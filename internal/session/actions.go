package session

import (
	"time"

	"rag-assistant/client/internal/model"
)

// Action is anything the Reducer understands. Lifecycle actions (Started,
// Succeeded, Failed) come from the dispatcher; the rest are local,
// synchronous edits issued directly by UI collaborators.
type Action interface {
	isAction()
}

// Request identifies one dispatched call.
type Request struct {
	ID             string `json:"id"`
	Op             Op     `json:"op"`
	ConversationID string `json:"conversation_id,omitempty"`
	// Epoch is the conversation epoch observed when the call was issued.
	Epoch uint64 `json:"epoch"`
	// Fence marks the result as discardable once Epoch is no longer current.
	Fence     bool      `json:"fence"`
	StartedAt time.Time `json:"started_at"`
}

// Started opens the lifecycle of a call.
type Started struct {
	Request Request
}

// Succeeded resolves a call with its typed result.
type Succeeded struct {
	Request Request
	Result  Result
}

// Failed resolves a call with a failure.
type Failed struct {
	Request Request
	Failure model.Failure
}

// Result is the typed payload of a successful call. There is one variant per
// operation family.
type Result interface {
	isResult()
}

type ConversationCreated struct {
	Conversation model.Conversation
}

type ConversationsListed struct {
	Conversations []model.Conversation
}

type ConversationDeleted struct {
	ID string
}

type HistoryLoaded struct {
	Messages []model.Message
}

type FileUploaded struct {
	FileName string
	// Documents is the backend's post-upload document list.
	Documents  []string
	AutoSelect bool
}

type URLIngested struct{}

type TopicSearched struct {
	Results []model.TopicResult
}

type TopicIngested struct{}

type DocumentsFetched struct {
	Documents []string
}

type MessageAnswered struct {
	MessageID string
	Answer    string
	// Title is the conversation title reported alongside the answer, if any.
	Title string
}

type FeedbackSubmitted struct{}

// Local actions.

type SelectConversation struct {
	ID string
}

type ToggleDocument struct {
	Name string
}

type RemoveDocument struct {
	Name string
}

// EchoUserMessage appends the user's own message before the backend answers.
type EchoUserMessage struct {
	Message model.Message
}

type ClearTopicResults struct{}

type DismissError struct{}

func (Started) isAction()            {}
func (Succeeded) isAction()          {}
func (Failed) isAction()             {}
func (SelectConversation) isAction() {}
func (ToggleDocument) isAction()     {}
func (RemoveDocument) isAction()     {}
func (EchoUserMessage) isAction()    {}
func (ClearTopicResults) isAction()  {}
func (DismissError) isAction()       {}

func (ConversationCreated) isResult() {}
func (ConversationsListed) isResult() {}
func (ConversationDeleted) isResult() {}
func (HistoryLoaded) isResult()       {}
func (FileUploaded) isResult()        {}
func (URLIngested) isResult()         {}
func (TopicSearched) isResult()       {}
func (TopicIngested) isResult()       {}
func (DocumentsFetched) isResult()    {}
func (MessageAnswered) isResult()     {}
func (FeedbackSubmitted) isResult()   {}
