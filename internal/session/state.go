package session

import (
	"rag-assistant/client/internal/model"
)

// Op names an asynchronous operation family.
type Op string

const (
	OpCreateConversation Op = "create_conversation"
	OpListConversations  Op = "list_conversations"
	OpDeleteConversation Op = "delete_conversation"
	OpLoadHistory        Op = "load_history"
	OpUploadFile         Op = "upload_file"
	OpIngestURL          Op = "ingest_url"
	OpSearchTopic        Op = "search_topic"
	OpIngestTopic        Op = "ingest_topic"
	OpFetchDocuments     Op = "fetch_documents"
	OpSendMessage        Op = "send_message"
	OpSubmitFeedback     Op = "submit_feedback"
)

// Category is the coarse loading flag an operation shares with its siblings.
type Category int

const (
	CategoryLoading Category = iota
	CategorySending
	CategoryUploading
	CategorySearching
)

// Category reports which loading flag op drives.
func (o Op) Category() Category {
	switch o {
	case OpSendMessage:
		return CategorySending
	case OpUploadFile:
		return CategoryUploading
	case OpSearchTopic:
		return CategorySearching
	default:
		return CategoryLoading
	}
}

// ConversationScoped reports whether results of op only make sense for the
// conversation that was current when it was issued.
func (o Op) ConversationScoped() bool {
	switch o {
	case OpLoadHistory, OpFetchDocuments, OpUploadFile, OpSendMessage:
		return true
	default:
		return false
	}
}

// State is the single session state of the client. Values handed out by the
// Store are snapshots and must be treated as read-only.
type State struct {
	Conversations []model.Conversation `json:"conversations"`
	// CurrentConversationID is empty when no conversation is active.
	CurrentConversationID string `json:"current_conversation_id,omitempty"`
	// Epoch increments every time CurrentConversationID changes.
	Epoch uint64 `json:"epoch"`

	Messages          []model.Message     `json:"messages"`
	Documents         []string            `json:"documents"`
	SelectedDocuments Selection           `json:"selected_documents" swaggertype:"array,string"`
	TopicResults      []model.TopicResult `json:"topic_search_results"`

	IsLoading   bool `json:"is_loading"`
	IsSending   bool `json:"is_sending"`
	IsUploading bool `json:"is_uploading"`
	IsSearching bool `json:"is_searching"`

	// Pending tracks every in-flight call by request id, independently of
	// the coarse flags above.
	Pending map[string]Request `json:"pending"`

	Error *model.Failure `json:"error"`
}

// NewState returns the start-of-session state: empty collections, flags off.
func NewState() State {
	return State{
		Conversations: []model.Conversation{},
		Messages:      []model.Message{},
		Documents:     []string{},
		TopicResults:  []model.TopicResult{},
		Pending:       map[string]Request{},
	}
}

// CanSend reports whether the send gate is open.
func (s State) CanSend() bool {
	return s.CurrentConversationID != "" && s.SelectedDocuments.Len() > 0
}

// Busy reports the coarse flag for c.
func (s State) Busy(c Category) bool {
	switch c {
	case CategorySending:
		return s.IsSending
	case CategoryUploading:
		return s.IsUploading
	case CategorySearching:
		return s.IsSearching
	default:
		return s.IsLoading
	}
}

// InFlight counts outstanding calls of op.
func (s State) InFlight(op Op) int {
	n := 0
	for _, req := range s.Pending {
		if req.Op == op {
			n++
		}
	}
	return n
}

// Superseded reports whether the outcome of a fenced request must be
// dropped: the current conversation changed after it was issued, or it was
// issued for a conversation that is not the current one.
func (s State) Superseded(req Request) bool {
	return req.Fence && (req.Epoch != s.Epoch || req.ConversationID != s.CurrentConversationID)
}

// Conversation looks up a listed conversation by id.
func (s State) Conversation(id string) (model.Conversation, bool) {
	for _, c := range s.Conversations {
		if c.ID == id {
			return c, true
		}
	}
	return model.Conversation{}, false
}

func (s *State) setFlag(c Category, v bool) {
	switch c {
	case CategorySending:
		s.IsSending = v
	case CategoryUploading:
		s.IsUploading = v
	case CategorySearching:
		s.IsSearching = v
	default:
		s.IsLoading = v
	}
}
