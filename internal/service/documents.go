package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rag-assistant/client/internal/gateway"
	"rag-assistant/client/internal/session"
)

// FetchDocuments replaces the document list with the backend's list for conversationID.
func (d *Dispatcher) FetchDocuments(ctx context.Context, conversationID string) error {
	return d.run(ctx, task{
		op:             session.OpFetchDocuments,
		conversationID: conversationID,
		prepare:        requireConversation(conversationID),
		call: func(ctx context.Context) (session.Result, error) {
			docs, err := d.backend.FetchDocuments(ctx, conversationID)
			if err != nil {
				return nil, err
			}
			return session.DocumentsFetched{Documents: docs}, nil
		},
	})
}

// UploadFile submits one file and merges the returned names into the document list.
func (d *Dispatcher) UploadFile(ctx context.Context, conversationID string, file gateway.File) error {
	return d.run(ctx, task{
		op:             session.OpUploadFile,
		conversationID: conversationID,
		prepare: func(st session.State) ([]session.Action, error) {
			if conversationID == "" {
				return nil, precondition("conversation id is required")
			}
			if file.Name == "" || file.Content == nil {
				return nil, precondition("file is empty")
			}
			return nil, nil
		},
		call: func(ctx context.Context) (session.Result, error) {
			names, err := d.backend.UploadDocument(ctx, conversationID, file)
			if err != nil {
				return nil, err
			}
			return session.FileUploaded{FileName: file.Name, Documents: names, AutoSelect: d.opts.AutoSelectUploads}, nil
		},
	})
}

// UploadFiles submits files one call at a time. Every returned document list
// is accumulated; a failed file does not stop the rest. The failures are
// joined into the returned error.
func (d *Dispatcher) UploadFiles(ctx context.Context, conversationID string, files ...gateway.File) error {
	if conversationID == "" {
		return precondition("conversation id is required")
	}
	if len(files) == 0 {
		return precondition("no files to upload")
	}
	var errs []error
	for _, f := range files {
		if err := d.UploadFile(ctx, conversationID, f); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// IngestURL asks the backend to scrape rawURL into conversationID. The
// document list is not refreshed; call FetchDocuments afterwards.
func (d *Dispatcher) IngestURL(ctx context.Context, conversationID, rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	return d.run(ctx, task{
		op:             session.OpIngestURL,
		conversationID: conversationID,
		prepare: func(st session.State) ([]session.Action, error) {
			if conversationID == "" {
				return nil, precondition("conversation id is required")
			}
			if rawURL == "" {
				return nil, precondition("url is empty")
			}
			return nil, checkVar("url", rawURL, "url")
		},
		call: func(ctx context.Context) (session.Result, error) {
			if err := d.backend.IngestURL(ctx, conversationID, rawURL); err != nil {
				return nil, err
			}
			return session.URLIngested{}, nil
		},
	})
}

// SearchTopic replaces the topic candidates. seenURLs are excluded by the
// backend, which lets callers page through more results.
func (d *Dispatcher) SearchTopic(ctx context.Context, topic string, seenURLs ...string) error {
	topic = strings.TrimSpace(topic)
	return d.run(ctx, task{
		op: session.OpSearchTopic,
		prepare: func(st session.State) ([]session.Action, error) {
			if topic == "" {
				return nil, precondition("topic is empty")
			}
			return nil, nil
		},
		call: func(ctx context.Context) (session.Result, error) {
			results, err := d.backend.SearchTopic(ctx, topic, seenURLs)
			if err != nil {
				return nil, err
			}
			return session.TopicSearched{Results: results}, nil
		},
	})
}

// IngestTopic ingests the chosen candidate urls into conversationID and
// clears the candidates. The document list is not refreshed.
func (d *Dispatcher) IngestTopic(ctx context.Context, conversationID, topic string, selectedURLs []string) error {
	topic = strings.TrimSpace(topic)
	return d.run(ctx, task{
		op:             session.OpIngestTopic,
		conversationID: conversationID,
		prepare: func(st session.State) ([]session.Action, error) {
			if conversationID == "" {
				return nil, precondition("conversation id is required")
			}
			if topic == "" {
				return nil, precondition("topic is empty")
			}
			return nil, checkVar("selected_urls", selectedURLs, "dive,url")
		},
		call: func(ctx context.Context) (session.Result, error) {
			if err := d.backend.IngestTopic(ctx, conversationID, topic, selectedURLs); err != nil {
				return nil, err
			}
			return session.TopicIngested{}, nil
		},
	})
}

func (d *Dispatcher) ToggleDocument(name string) session.State {
	return d.store.Dispatch(session.ToggleDocument{Name: name})
}

// RemoveDocument drops name from the local list and selection only.
func (d *Dispatcher) RemoveDocument(name string) session.State {
	return d.store.Dispatch(session.RemoveDocument{Name: name})
}

func (d *Dispatcher) ClearTopicResults() session.State {
	return d.store.Dispatch(session.ClearTopicResults{})
}
