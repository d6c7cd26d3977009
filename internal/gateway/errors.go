package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/model"
)

// Error is a rejected backend call. StatusCode is zero when no response was
// received at all.
type Error struct {
	StatusCode int
	Detail     string
	Body       []byte
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport failure: %s", e.Detail)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers match gateway errors against the shared sentinels.
func (e *Error) Is(target error) bool {
	if e.StatusCode == 0 {
		return target == app_errors.ErrTransport
	}
	if e.StatusCode == http.StatusNotFound && target == app_errors.ErrNotFound {
		return true
	}
	return target == app_errors.ErrBackend
}

// Failure converts e to the form stored in the session error slot.
func (e *Error) Failure() model.Failure {
	f := model.Failure{Status: e.StatusCode, Detail: e.Detail}
	if len(e.Body) > 0 && json.Valid(e.Body) {
		f.Payload = json.RawMessage(e.Body)
	}
	return f
}

// FailureFrom converts any error returned by a gateway call to a Failure.
func FailureFrom(err error) model.Failure {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Failure()
	}
	return model.Failure{Detail: fmt.Sprintf("transport failure: %v", err)}
}

func transportError(err error) *Error {
	return &Error{Detail: err.Error(), Err: err}
}

// statusError builds an Error from a non-2xx response, preferring the
// backend's own message ({"detail": ...} or {"error": ...}).
func statusError(resp *http.Response, body []byte) *Error {
	return &Error{
		StatusCode: resp.StatusCode,
		Detail:     detailFrom(resp.StatusCode, body),
		Body:       body,
	}
}

func detailFrom(status int, body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		var detail string
		if len(payload.Detail) > 0 {
			if err := json.Unmarshal(payload.Detail, &detail); err == nil && detail != "" {
				return detail
			}
			// Validation errors come back as a list; keep them verbatim.
			return string(payload.Detail)
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
