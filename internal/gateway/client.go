package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/publicsuffix"

	app_errors "rag-assistant/client/internal/errors"
	"rag-assistant/client/internal/model"
)

// Backend is the remote document-QA service as seen by the session engine.
type Backend interface {
	CreateConversation(ctx context.Context, userID string) (model.Conversation, error)
	ListConversations(ctx context.Context) ([]model.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID string) error
	FetchHistory(ctx context.Context, conversationID string) ([]model.Message, error)
	UploadDocument(ctx context.Context, conversationID string, file File) ([]string, error)
	IngestURL(ctx context.Context, conversationID, rawURL string) error
	SearchTopic(ctx context.Context, topic string, seenURLs []string) ([]model.TopicResult, error)
	IngestTopic(ctx context.Context, conversationID, topic string, selectedURLs []string) error
	FetchDocuments(ctx context.Context, conversationID string) ([]string, error)
	SendMessage(ctx context.Context, conversationID, query string, selectedDocuments []string) (Answer, error)
	SubmitFeedback(ctx context.Context, req FeedbackRequest) error
}

// Options configures a Client.
type Options struct {
	BaseURL string
	// Token, when set, is sent as a bearer token on every call.
	Token string
	// Timeout bounds each call. Zero means no client-side timeout.
	Timeout time.Duration
	// HTTPClient overrides the default client. Its Jar is left alone.
	HTTPClient *http.Client
}

// Client talks JSON over HTTP to the backend. Cookies set by the backend are
// kept in a jar and sent back on every call.
type Client struct {
	client   *http.Client
	baseURL  string
	token    string
	validate *validator.Validate
}

var _ Backend = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("%w: backend url is required", app_errors.ErrValidation)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("could not create cookie jar: %w", err)
		}
		httpClient = &http.Client{Jar: jar, Timeout: opts.Timeout}
	}
	return &Client{
		client:   httpClient,
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		token:    opts.Token,
		validate: validator.New(),
	}, nil
}

func (c *Client) CreateConversation(ctx context.Context, userID string) (model.Conversation, error) {
	body := createConversationRequest{}
	if userID != "" {
		body.UserID = &userID
	}
	var resp conversationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/qa/chat/new", nil, body, &resp); err != nil {
		return model.Conversation{}, err
	}
	if resp.ConversationID == "" {
		return model.Conversation{}, transportError(errors.New("create response carried no conversation_id"))
	}
	return model.Conversation{ID: resp.ConversationID, Title: deref(resp.Title)}, nil
}

func (c *Client) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	var resp conversationListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/qa/conversations", nil, nil, &resp); err != nil {
		return nil, err
	}
	convs := make([]model.Conversation, 0, len(resp.Conversations))
	for _, item := range resp.Conversations {
		convs = append(convs, model.Conversation{ID: item.ID, Title: deref(item.Title), UpdatedAt: item.UpdatedAt})
	}
	return convs, nil
}

func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/qa/conversations/"+url.PathEscape(conversationID), nil, nil, nil)
}

func (c *Client) FetchHistory(ctx context.Context, conversationID string) ([]model.Message, error) {
	var resp historyResponse
	path := "/qa/conversations/" + url.PathEscape(conversationID) + "/history"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	messages := make([]model.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		messages = append(messages, model.Message{ID: m.ID, Role: model.RoleFromRemote(m.Role), Content: m.Text})
	}
	return messages, nil
}

func (c *Client) UploadDocument(ctx context.Context, conversationID string, file File) ([]string, error) {
	if file.Name == "" || file.Content == nil {
		return nil, fmt.Errorf("%w: file name and content are required", app_errors.ErrValidation)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("conversation_id", conversationID); err != nil {
		return nil, fmt.Errorf("could not write multipart field: %w", err)
	}
	part, err := mw.CreatePart(filePartHeader(file))
	if err != nil {
		return nil, fmt.Errorf("could not create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, fmt.Errorf("could not read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("could not finish multipart body: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/ingest/document", nil, &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var resp uploadResponse
	if err := c.send(httpReq, &resp); err != nil {
		return nil, err
	}
	return resp.DocumentNames, nil
}

func (c *Client) IngestURL(ctx context.Context, conversationID, rawURL string) error {
	body := ingestURLRequest{URL: rawURL}
	if err := c.check(body); err != nil {
		return err
	}
	query := url.Values{"conversation_id": {conversationID}}
	return c.doJSON(ctx, http.MethodPost, "/ingest/url", query, body, nil)
}

func (c *Client) SearchTopic(ctx context.Context, topic string, seenURLs []string) ([]model.TopicResult, error) {
	body := searchTopicRequest{Topic: topic, SeenURLs: seenURLs}
	if body.SeenURLs == nil {
		body.SeenURLs = []string{}
	}
	if err := c.check(body); err != nil {
		return nil, err
	}
	var resp searchTopicResponse
	if err := c.doJSON(ctx, http.MethodPost, "/ingest/search/query", nil, body, &resp); err != nil {
		return nil, err
	}
	results := make([]model.TopicResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, model.TopicResult{Title: r.Title, URL: r.URL})
	}
	return results, nil
}

func (c *Client) IngestTopic(ctx context.Context, conversationID, topic string, selectedURLs []string) error {
	body := ingestTopicRequest{Topic: topic, SelectedURLs: selectedURLs}
	if err := c.check(body); err != nil {
		return err
	}
	query := url.Values{"conversation_id": {conversationID}}
	return c.doJSON(ctx, http.MethodPost, "/ingest/search/query", query, body, nil)
}

func (c *Client) FetchDocuments(ctx context.Context, conversationID string) ([]string, error) {
	var resp documentsResponse
	path := "/qa/conversations/" + url.PathEscape(conversationID) + "/documents"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID, query string, selectedDocuments []string) (Answer, error) {
	body := sendMessageRequest{UserQuery: query, SelectedDocuments: selectedDocuments}
	if err := c.check(body); err != nil {
		return Answer{}, err
	}
	var resp conversationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/qa/conversations/"+url.PathEscape(conversationID), nil, body, &resp); err != nil {
		return Answer{}, err
	}
	return Answer{ConversationID: resp.ConversationID, Response: deref(resp.Response), Title: deref(resp.Title)}, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, req FeedbackRequest) error {
	if err := c.check(req); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, "/qa/chat/feedback", nil, req, nil)
}

// doJSON sends body (if any) as JSON and decodes a 2xx response into out (if any).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	httpReq, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return c.send(httpReq, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	return httpReq, nil
}

func (c *Client) send(httpReq *http.Request, out any) error {
	resp, err := c.client.Do(httpReq)
	if err != nil {
		slog.Debug("Backend call failed", "method", httpReq.Method, "path", httpReq.URL.Path, "error", err)
		return transportError(err)
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			slog.Warn("Failed to close backend response body", "error", cErr)
		}
	}()
	slog.Debug("Backend call finished", "method", httpReq.Method, "path", httpReq.URL.Path, "status", resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(fmt.Errorf("could not read response body: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp, bodyBytes)
	}
	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return transportError(fmt.Errorf("could not decode response: %w", err))
	}
	return nil
}

// check validates an outgoing body before it leaves the process.
func (c *Client) check(body any) error {
	if err := c.validate.Struct(body); err != nil {
		return fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error())
	}
	return nil
}

func filePartHeader(file File) textproto.MIMEHeader {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name)},
		"Content-Type":        {contentType},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
