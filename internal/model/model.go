package model

import (
	"encoding/json"
	"time"
)

// Role identifies the author of a message in the transcript.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// remoteHumanRole is the token the backend stores for user turns.
const remoteHumanRole = "human"

// RoleFromRemote maps a stored history role token to a Role.
// "human" is the user; anything else is treated as the assistant.
func RoleFromRemote(token string) Role {
	if token == remoteHumanRole {
		return RoleUser
	}
	return RoleAssistant
}

// Conversation is a persisted chat session scoping its own messages and documents.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Message is a single transcript entry.
type Message struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// TopicResult is one candidate source returned by a topic search.
type TopicResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Failure is the structured form of a rejected operation, as stored in the
// session error slot.
type Failure struct {
	Status  int             `json:"status,omitempty"` // HTTP status, 0 when no response was received.
	Detail  string          `json:"detail"`
	Payload json.RawMessage `json:"payload,omitempty" swaggertype:"object"` // Raw backend body, when present.
}

func (f Failure) Error() string {
	return f.Detail
}

// JournalPhase is the lifecycle step a journal entry records.
type JournalPhase string

const (
	PhaseStarted   JournalPhase = "started"
	PhaseSucceeded JournalPhase = "succeeded"
	PhaseFailed    JournalPhase = "failed"
)

// JournalEntry is one recorded lifecycle event of a dispatched call.
type JournalEntry struct {
	ID             int64        `json:"id"`
	RequestID      string       `json:"request_id"`
	Op             string       `json:"op"`
	Phase          JournalPhase `json:"phase"`
	ConversationID string       `json:"conversation_id,omitempty"`
	// Stale is set when the outcome was discarded by conversation fencing.
	Stale     bool      `json:"stale"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
