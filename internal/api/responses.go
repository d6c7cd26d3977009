package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "rag-assistant/client/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for inspector
// responses and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response for routes that change
// local state and have nothing else to report.
type StatusResponse struct {
	Status string `json:"status"`
}

// respondWithError is the centralized error handling function for the API
// layer. It maps the shared sentinels to HTTP status codes and formats a
// standard JSON error response. Backend and transport failures are reported
// as a bad gateway; the same failure is also in the session error slot.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages name the failing fields and are safe to show.
		message = err.Error()
	case errors.Is(err, app_errors.ErrPrecondition):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, app_errors.ErrStale):
		statusCode = http.StatusConflict
		message = "The result was discarded because the current conversation changed."
	case errors.Is(err, app_errors.ErrBackend), errors.Is(err, app_errors.ErrTransport):
		statusCode = http.StatusBadGateway
		message = err.Error()
	default:
		// Unmapped errors never leak their details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The full error is logged; the client only sees message.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// A programming error, e.g. a payload holding a channel.
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeJSON reads a request body into dst and validates it.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %s", app_errors.ErrValidation, err.Error())
	}
	return validateRequest(dst)
}

// writeStreamEvent marshals data and writes it as one Server-Sent Event,
// flushing immediately so the inspector sees every state change. A write
// failure means the client has disconnected.
func writeStreamEvent(w http.ResponseWriter, event string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to marshal stream data to JSON", "error", err)
		// Skip the event but keep the stream open.
		return nil
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write data to stream: %w", err)
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
