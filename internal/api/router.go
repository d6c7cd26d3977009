package api

import (
	"net/http"
	"time"

	// Registers the inspector API definitions with swag.
	_ "rag-assistant/client/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter assembles the inspector routes. journal may be nil when the
// journal is disabled; its routes are then not mounted.
func NewRouter(session *SessionHandler, feedback *FeedbackHandler, journal *JournalHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Serves the Swagger UI and doc.json for the inspector API.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Local routes never wait on the backend.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(10 * time.Second))

			r.Get("/session", session.GetState)
			r.Put("/session/current", session.SelectConversation)
			r.Post("/session/documents/toggle", session.ToggleDocument)
			r.Post("/session/documents/remove", session.RemoveDocument)
			r.Delete("/session/topics", session.ClearTopicResults)
			r.Delete("/session/error", session.DismissError)

			r.Get("/session/feedback", feedback.GetDialog)
			r.Post("/session/feedback", feedback.OpenDialog)
			r.Put("/session/feedback/rating", feedback.SetRating)
			r.Delete("/session/feedback", feedback.CloseDialog)

			if journal != nil {
				r.Get("/journal", journal.ListEntries)
				r.Get("/journal/{requestID}", journal.GetRequest)
			}
		})

		// Backend operations and the stream hold the connection for as long
		// as they take.
		r.Group(func(r chi.Router) {
			r.Get("/session/stream", session.StreamState)

			r.Post("/session/conversations", session.CreateConversation)
			r.Post("/session/conversations/refresh", session.ListConversations)
			r.Delete("/session/conversations/{conversationID}", session.DeleteConversation)
			r.Post("/session/conversations/{conversationID}/open", session.OpenConversation)
			r.Post("/session/conversations/{conversationID}/history", session.LoadHistory)
			r.Post("/session/conversations/{conversationID}/documents/refresh", session.FetchDocuments)
			r.Post("/session/conversations/{conversationID}/documents", session.UploadFiles)
			r.Post("/session/conversations/{conversationID}/urls", session.IngestURL)
			r.Post("/session/conversations/{conversationID}/topics", session.IngestTopic)
			r.Post("/session/topics/search", session.SearchTopic)
			r.Post("/session/messages", session.SendMessage)
			r.Post("/session/feedback/submit", feedback.Submit)
		})
	})

	return r
}
