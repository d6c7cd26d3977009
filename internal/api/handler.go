package api

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/interfaces"
	"rag-assistant/client/internal/session"
)

const maxUploadMemory = 32 << 20

type SelectConversationRequest struct {
	// Empty clears the current conversation.
	ConversationID string `json:"conversation_id"`
}

type IngestURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type SearchTopicRequest struct {
	Topic    string   `json:"topic" validate:"required"`
	SeenURLs []string `json:"seen_urls"`
}

type IngestTopicRequest struct {
	Topic        string   `json:"topic" validate:"required"`
	SelectedURLs []string `json:"selected_urls" validate:"omitempty,dive,url"`
}

type DocumentRequest struct {
	Name string `json:"name" validate:"required"`
}

type SendMessageRequest struct {
	Query string `json:"query" validate:"required"`
}

// SessionHandler exposes the session state and its operations. Operation
// routes block until the backend resolves and answer with the resulting
// snapshot. A dropped connection does not abort the operation.
type SessionHandler struct {
	session interfaces.SessionService
}

func NewSessionHandler(svc interfaces.SessionService) *SessionHandler {
	return &SessionHandler{session: svc}
}

// GetState godoc
// @Summary      Get the session state
// @Description  Returns the current session snapshot.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.State
// @Router       /v1/session [get]
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondWithState(w, http.StatusOK, h.session.Snapshot())
}

// StreamState godoc
// @Summary      Stream the session state
// @Description  Pushes a "state" event with the latest snapshot on every change. Intermediate snapshots may be skipped.
// @Tags         Session
// @Produce      text/event-stream
// @Success      200  {object}  session.State  "Stream of state events"
// @Router       /v1/session/stream [get]
func (h *SessionHandler) StreamState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	updates, cancel := h.session.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			slog.Debug("State stream closed by client")
			return
		case st, ok := <-updates:
			if !ok {
				return
			}
			if err := writeStreamEvent(w, "state", st); err != nil {
				slog.Debug("State stream write failed", "error", err)
				return
			}
		}
	}
}

// CreateConversation godoc
// @Summary      Create a conversation
// @Description  Creates a conversation on the backend and makes it current.
// @Tags         Session
// @Produce      json
// @Success      201  {object}  session.State
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations [post]
func (h *SessionHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, http.StatusCreated, h.session.CreateConversation)
}

// ListConversations godoc
// @Summary      Refresh the conversation list
// @Description  Replaces the conversation list with the backend's. The current conversation is kept.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.State
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/refresh [post]
func (h *SessionHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, http.StatusOK, h.session.ListConversations)
}

// DeleteConversation godoc
// @Summary      Delete a conversation
// @Description  Deletes a conversation on the backend. Deleting the current one clears its transcript and documents.
// @Tags         Session
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  session.State
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/{conversationID} [delete]
func (h *SessionHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.DeleteConversation(ctx, conversationID)
	})
}

// SelectConversation godoc
// @Summary      Select the current conversation
// @Description  Moves the current pointer without reloading the transcript or documents. An empty id clears it.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        selectRequest  body  SelectConversationRequest  true  "Conversation to select"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/session/current [put]
func (h *SessionHandler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	var req SelectConversationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithState(w, http.StatusOK, h.session.SelectConversation(req.ConversationID))
}

// OpenConversation godoc
// @Summary      Open a conversation
// @Description  Selects a conversation and reloads its transcript and documents concurrently.
// @Tags         Session
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/{conversationID}/open [post]
func (h *SessionHandler) OpenConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.OpenConversation(ctx, conversationID)
	})
}

// LoadHistory godoc
// @Summary      Load the transcript
// @Description  Replaces the transcript with the stored history of the conversation.
// @Tags         Session
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/{conversationID}/history [post]
func (h *SessionHandler) LoadHistory(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.LoadHistory(ctx, conversationID)
	})
}

// FetchDocuments godoc
// @Summary      Refresh the document list
// @Description  Replaces the document list with the backend's list for the conversation.
// @Tags         Session
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/{conversationID}/documents/refresh [post]
func (h *SessionHandler) FetchDocuments(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.FetchDocuments(ctx, conversationID)
	})
}

// UploadFiles godoc
// @Summary      Upload documents
// @Description  Uploads every part of the "files" form field, one backend call per file. A failed file does not stop the rest.
// @Tags         Session
// @Accept       multipart/form-data
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Param        files           formData  file    true  "Files to upload"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/{conversationID}/documents [post]
func (h *SessionHandler) UploadFiles(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid multipart form: %s", app_errors.ErrValidation, err.Error()))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondWithError(w, fmt.Errorf("%w: no files in form field 'files'", app_errors.ErrValidation))
		return
	}

	files := make([]gateway.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			respondWithError(w, fmt.Errorf("%w: could not read %s: %s", app_errors.ErrValidation, fh.Filename, err.Error()))
			return
		}
		defer func(f multipart.File) { _ = f.Close() }(f)
		files = append(files, gateway.File{Name: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Content: f})
	}

	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.UploadFiles(ctx, conversationID, files...)
	})
}

// IngestURL godoc
// @Summary      Ingest a URL
// @Description  Asks the backend to scrape a web page into the conversation. The document list is not refreshed.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Param        urlRequest      body  IngestURLRequest  true  "URL to ingest"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/{conversationID}/urls [post]
func (h *SessionHandler) IngestURL(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	var req IngestURLRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.IngestURL(ctx, conversationID, req.URL)
	})
}

// SearchTopic godoc
// @Summary      Search a topic
// @Description  Replaces the topic candidates with the backend's search results.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        searchRequest  body  SearchTopicRequest  true  "Topic to search"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/topics/search [post]
func (h *SessionHandler) SearchTopic(w http.ResponseWriter, r *http.Request) {
	var req SearchTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.SearchTopic(ctx, req.Topic, req.SeenURLs...)
	})
}

// IngestTopic godoc
// @Summary      Ingest topic results
// @Description  Ingests the chosen candidate URLs into the conversation and clears the candidates.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Param        topicRequest    body  IngestTopicRequest  true  "Topic and chosen URLs"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/conversations/{conversationID}/topics [post]
func (h *SessionHandler) IngestTopic(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	var req IngestTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.IngestTopic(ctx, conversationID, req.Topic, req.SelectedURLs)
	})
}

// ClearTopicResults godoc
// @Summary      Clear topic results
// @Description  Drops the topic candidates.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.State
// @Router       /v1/session/topics [delete]
func (h *SessionHandler) ClearTopicResults(w http.ResponseWriter, r *http.Request) {
	respondWithState(w, http.StatusOK, h.session.ClearTopicResults())
}

// ToggleDocument godoc
// @Summary      Toggle a document
// @Description  Adds the document to the selection or removes it.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        documentRequest  body  DocumentRequest  true  "Document name"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/session/documents/toggle [post]
func (h *SessionHandler) ToggleDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithState(w, http.StatusOK, h.session.ToggleDocument(req.Name))
}

// RemoveDocument godoc
// @Summary      Remove a document
// @Description  Drops the document from the local list and selection. The backend is not called.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        documentRequest  body  DocumentRequest  true  "Document name"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/session/documents/remove [post]
func (h *SessionHandler) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	var req DocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithState(w, http.StatusOK, h.session.RemoveDocument(req.Name))
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Echoes the query into the transcript and appends the answer once the backend resolves. Requires a current conversation and at least one selected document.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        messageRequest  body  SendMessageRequest  true  "User query"
// @Success      200  {object}  session.State
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/session/messages [post]
func (h *SessionHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	h.run(w, r, http.StatusOK, func(ctx context.Context) error {
		return h.session.SendMessage(ctx, req.Query)
	})
}

// DismissError godoc
// @Summary      Dismiss the error
// @Description  Clears the session error slot.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  session.State
// @Router       /v1/session/error [delete]
func (h *SessionHandler) DismissError(w http.ResponseWriter, r *http.Request) {
	respondWithState(w, http.StatusOK, h.session.DismissError())
}

// run executes op detached from the request's cancellation and answers with
// the snapshot taken after it resolved.
func (h *SessionHandler) run(w http.ResponseWriter, r *http.Request, status int, op func(ctx context.Context) error) {
	if err := op(context.WithoutCancel(r.Context())); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithState(w, status, h.session.Snapshot())
}

func respondWithState(w http.ResponseWriter, status int, st session.State) {
	respondWithJSON(w, status, st)
}
