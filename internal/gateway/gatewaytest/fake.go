// Package gatewaytest provides an in-memory stand-in for the document-QA
// backend, served over real HTTP so the gateway client can be exercised end
// to end.
package gatewaytest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rag-assistant/client/internal/gateway"
)

// Record is one stored transcript entry, in backend vocabulary ("human"/"ai").
type Record struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Text string `json:"text"`
}

type conversation struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

type failure struct {
	status int
	body   string
}

// Backend is the fake. The zero value is not usable; call New.
type Backend struct {
	mu            sync.Mutex
	conversations []*conversation
	history       map[string][]Record
	documents     map[string][]string
	feedback      []gateway.FeedbackRequest
	failures      map[string]failure
	calls         map[string]int
	nextID        int

	server *httptest.Server
}

// New starts a fake backend that is shut down when t finishes.
func New(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		history:   make(map[string][]Record),
		documents: make(map[string][]string),
		failures:  make(map[string]failure),
		calls:     make(map[string]int),
	}
	b.server = httptest.NewServer(b.routes())
	t.Cleanup(b.server.Close)
	return b
}

func (b *Backend) URL() string { return b.server.URL }

// Seed registers a conversation with documents and history.
func (b *Backend) Seed(id, title string, documents []string, history ...Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := title
	b.conversations = append(b.conversations, &conversation{ID: id, Title: &t, UpdatedAt: time.Now().UTC()})
	b.documents[id] = slices.Clone(documents)
	b.history[id] = slices.Clone(history)
}

// FailNext makes the next call to method+path answer with status and body.
func (b *Backend) FailNext(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, body: body}
}

// Calls reports how many requests reached method+path.
func (b *Backend) Calls(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

func (b *Backend) Feedback() []gateway.FeedbackRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.feedback)
}

func (b *Backend) Documents(conversationID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.documents[conversationID])
}

func (b *Backend) History(conversationID string) []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.history[conversationID])
}

func (b *Backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(b.injectFailures)

	r.Route("/qa", func(r chi.Router) {
		r.Post("/chat/new", b.createConversation)
		r.Post("/chat/feedback", b.submitFeedback)
		r.Get("/conversations", b.listConversations)
		r.Post("/conversations/{id}", b.sendMessage)
		r.Delete("/conversations/{id}", b.deleteConversation)
		r.Get("/conversations/{id}/history", b.fetchHistory)
		r.Get("/conversations/{id}/documents", b.fetchDocuments)
	})
	r.Route("/ingest", func(r chi.Router) {
		r.Post("/document", b.uploadDocument)
		r.Post("/url", b.ingestURL)
		r.Post("/search/query", b.searchOrIngestTopic)
	})
	return r
}

func (b *Backend) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.calls[key]++
		f, ok := b.failures[key]
		delete(b.failures, key)
		b.mu.Unlock()
		if ok {
			w.WriteHeader(f.status)
			_, _ = io.WriteString(w, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) createConversation(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.nextID++
	id := fmt.Sprintf("conv-%d", b.nextID)
	b.conversations = append(b.conversations, &conversation{ID: id, UpdatedAt: time.Now().UTC()})
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"conversation_id": id, "title": nil, "response": nil})
}

func (b *Backend) listConversations(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]conversation, 0, len(b.conversations))
	for _, c := range b.conversations {
		out = append(out, *c)
	}
	writeJSON(w, http.StatusOK, map[string]any{"conversations": out})
}

func (b *Backend) deleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.find(id) == nil {
		notFound(w)
		return
	}
	b.conversations = slices.DeleteFunc(b.conversations, func(c *conversation) bool { return c.ID == id })
	delete(b.history, id)
	delete(b.documents, id)
	writeJSON(w, http.StatusOK, map[string]any{"conversation_id": id, "deleted": true})
}

func (b *Backend) fetchHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.find(id) == nil {
		notFound(w)
		return
	}
	msgs := b.history[id]
	if msgs == nil {
		msgs = []Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"conversation_id": id, "messages": msgs})
}

func (b *Backend) fetchDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.find(id) == nil {
		notFound(w)
		return
	}
	docs := b.documents[id]
	if docs == nil {
		docs = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"conversation_id": id, "documents": docs})
}

func (b *Backend) sendMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		UserQuery         string   `json:"user_query"`
		SelectedDocuments []string `json:"selected_documents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": err.Error()})
		return
	}
	if len(req.SelectedDocuments) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "No document selected for this query"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	conv := b.find(id)
	if conv == nil {
		notFound(w)
		return
	}
	if conv.Title == nil {
		title := req.UserQuery
		conv.Title = &title
	}
	answer := fmt.Sprintf("Answer to %q from %d document(s)", req.UserQuery, len(req.SelectedDocuments))
	b.nextID++
	b.history[id] = append(b.history[id],
		Record{ID: fmt.Sprintf("msg-%d-h", b.nextID), Role: "human", Text: req.UserQuery},
		Record{ID: fmt.Sprintf("msg-%d-a", b.nextID), Role: "ai", Text: answer},
	)
	conv.UpdatedAt = time.Now().UTC()
	writeJSON(w, http.StatusOK, map[string]any{"conversation_id": id, "response": answer, "title": *conv.Title})
}

func (b *Backend) uploadDocument(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": "file is required"})
		return
	}
	_ = file.Close()
	id := r.FormValue("conversation_id")

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.find(id) == nil {
		notFound(w)
		return
	}
	b.addDocuments(id, header.Filename)
	writeJSON(w, http.StatusOK, map[string]any{"document_names": b.documents[id]})
}

func (b *Backend) ingestURL(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("conversation_id")
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": "url is required"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.find(id) == nil {
		notFound(w)
		return
	}
	b.addDocuments(id, req.URL)
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "chunks_count": 1})
}

func (b *Backend) searchOrIngestTopic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic        string   `json:"topic"`
		SeenURLs     []string `json:"seen_urls"`
		SelectedURLs []string `json:"selected_urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Topic == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": "topic is required"})
		return
	}

	if id := r.URL.Query().Get("conversation_id"); id != "" {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.find(id) == nil {
			notFound(w)
			return
		}
		b.addDocuments(id, req.SelectedURLs...)
		writeJSON(w, http.StatusOK, map[string]any{"status": "success", "chunks_count": len(req.SelectedURLs)})
		return
	}

	results := []map[string]string{}
	for i := 1; len(results) < 2; i++ {
		u := fmt.Sprintf("https://example.org/%s/%d", req.Topic, i)
		if slices.Contains(req.SeenURLs, u) {
			continue
		}
		results = append(results, map[string]string{"title": fmt.Sprintf("%s #%d", req.Topic, i), "url": u})
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (b *Backend) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req gateway.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": err.Error()})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Rating must be between 1 and 5"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	found := slices.ContainsFunc(b.history[req.ConversationID], func(m Record) bool {
		return m.ID == req.MessageID && m.Role == "ai"
	})
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "AI message not found"})
		return
	}
	b.feedback = append(b.feedback, req)
	writeJSON(w, http.StatusOK, map[string]any{"message_id": req.MessageID, "rating": req.Rating, "status": "feedback recorded"})
}

// find must be called with mu held.
func (b *Backend) find(id string) *conversation {
	for _, c := range b.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// addDocuments must be called with mu held.
func (b *Backend) addDocuments(id string, names ...string) {
	for _, name := range names {
		if !slices.Contains(b.documents[id], name) {
			b.documents[id] = append(b.documents[id], name)
		}
	}
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Conversation not found"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
