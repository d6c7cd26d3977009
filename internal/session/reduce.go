package session

import (
	"maps"
	"slices"

	"rag-assistant/client/internal/model"
)

// Reduce is the only place session state changes. It never mutates s: any
// collection it touches is rebuilt, so earlier snapshots stay valid.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Started:
		s.setFlag(a.Request.Op.Category(), true)
		s.Pending = withPending(s.Pending, a.Request)
		return s

	case Succeeded:
		s = finish(s, a.Request)
		// The title is conversation-list state and survives a conversation switch.
		if r, ok := a.Result.(MessageAnswered); ok && r.Title != "" {
			s.Conversations = renamed(s.Conversations, a.Request.ConversationID, r.Title)
		}
		if s.Superseded(a.Request) {
			return s
		}
		return applyResult(s, a.Result)

	case Failed:
		s = finish(s, a.Request)
		if s.Superseded(a.Request) || a.Request.Op == OpSubmitFeedback {
			return s
		}
		f := a.Failure
		s.Error = &f
		return s

	case SelectConversation:
		if a.ID != s.CurrentConversationID {
			s.CurrentConversationID = a.ID
			s.Epoch++
		}
		return s

	case ToggleDocument:
		s.SelectedDocuments = s.SelectedDocuments.Toggle(a.Name)
		return s

	case RemoveDocument:
		s.Documents = nonNil(slices.DeleteFunc(slices.Clone(s.Documents), func(d string) bool { return d == a.Name }))
		s.SelectedDocuments = s.SelectedDocuments.Remove(a.Name)
		return s

	case EchoUserMessage:
		s.Messages = append(slices.Clip(s.Messages), a.Message)
		return s

	case ClearTopicResults:
		s.TopicResults = []model.TopicResult{}
		return s

	case DismissError:
		s.Error = nil
		return s
	}
	return s
}

func applyResult(s State, result Result) State {
	switch r := result.(type) {
	case ConversationCreated:
		s.Conversations = append(slices.Clip(s.Conversations), r.Conversation)
		s.CurrentConversationID = r.Conversation.ID
		s.Epoch++
		s = clearScoped(s)

	case ConversationsListed:
		s.Conversations = nonNil(slices.Clone(r.Conversations))

	case ConversationDeleted:
		s.Conversations = nonNil(slices.DeleteFunc(slices.Clone(s.Conversations), func(c model.Conversation) bool {
			return c.ID == r.ID
		}))
		if r.ID == s.CurrentConversationID {
			s.CurrentConversationID = ""
			s.Epoch++
			s = clearScoped(s)
		}

	case HistoryLoaded:
		s.Messages = nonNil(slices.Clone(r.Messages))

	case FileUploaded:
		s.Documents = union(s.Documents, r.Documents)
		if r.AutoSelect && r.FileName != "" {
			s.SelectedDocuments = s.SelectedDocuments.Add(r.FileName)
		}

	case DocumentsFetched:
		s.Documents = nonNil(slices.Clone(r.Documents))

	case TopicSearched:
		s.TopicResults = nonNil(slices.Clone(r.Results))

	case TopicIngested:
		s.TopicResults = []model.TopicResult{}

	case MessageAnswered:
		if r.Answer != "" {
			s.Messages = append(slices.Clip(s.Messages), model.Message{
				ID:      r.MessageID,
				Role:    model.RoleAssistant,
				Content: r.Answer,
			})
		}

	case URLIngested, FeedbackSubmitted:
		// Nothing local changes; callers refresh documents explicitly.
	}
	return s
}

// finish closes the lifecycle of req. The coarse flag clears even when a
// sibling call of the same category is still outstanding.
func finish(s State, req Request) State {
	s.setFlag(req.Op.Category(), false)
	if _, ok := s.Pending[req.ID]; ok {
		s.Pending = maps.Clone(s.Pending)
		delete(s.Pending, req.ID)
	}
	return s
}

func clearScoped(s State) State {
	s.Messages = []model.Message{}
	s.Documents = []string{}
	s.SelectedDocuments = Selection{}
	return s
}

func withPending(pending map[string]Request, req Request) map[string]Request {
	next := make(map[string]Request, len(pending)+1)
	maps.Copy(next, pending)
	next[req.ID] = req
	return next
}

func renamed(convs []model.Conversation, id, title string) []model.Conversation {
	idx := slices.IndexFunc(convs, func(c model.Conversation) bool { return c.ID == id })
	if idx < 0 || convs[idx].Title == title {
		return convs
	}
	next := slices.Clone(convs)
	next[idx].Title = title
	return next
}

// union appends the names of extra missing from base, keeping base order.
func union(base, extra []string) []string {
	out := slices.Clone(base)
	for _, name := range extra {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return nonNil(out)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
