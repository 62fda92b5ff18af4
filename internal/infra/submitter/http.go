// Package submitter delivers submissions to the remote endpoint or to a local outbox
package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/YoshitsuguKoike/propbrief/internal/application/port/output"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
)

// maxErrorBody bounds how much of a failed response ends up in the error
const maxErrorBody = 512

// HTTPSubmitter POSTs submissions as JSON. Any non-2xx status is a failure.
type HTTPSubmitter struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
	now      func() time.Time
}

// NewHTTPSubmitter creates an HTTPSubmitter. A nil client uses http.DefaultClient.
func NewHTTPSubmitter(client *http.Client, endpoint string, timeout time.Duration) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{
		client:   client,
		endpoint: endpoint,
		timeout:  timeout,
		now:      time.Now,
	}
}

type remoteReply struct {
	ID string `json:"id"`
}

// Submit sends one submission
func (s *HTTPSubmitter) Submit(ctx context.Context, sub payload.Submission) (*output.Receipt, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", sub.Reference)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to post submission: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: msg}
	}

	var reply remoteReply
	if len(bytes.TrimSpace(respBody)) > 0 {
		// a body that is not JSON is still a success
		_ = json.Unmarshal(respBody, &reply)
	}

	return &output.Receipt{
		Reference:   sub.Reference,
		Destination: s.endpoint,
		RemoteID:    reply.ID,
		AcceptedAt:  s.now().UTC(),
	}, nil
}

// StatusError is a non-2xx reply from the endpoint
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("submission rejected: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("submission rejected: HTTP %d: %s", e.StatusCode, e.Body)
}
