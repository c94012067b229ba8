package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultRemoteTimeout bounds a single remote submission attempt.
const DefaultRemoteTimeout = 10 * time.Second

// Remote submits a record to the contact endpoint.
type Remote interface {
	Submit(ctx context.Context, r Record) error
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("contact endpoint returned status %d", e.Code)
}

// HTTPRemote posts records as JSON to a fixed endpoint.
type HTTPRemote struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

// NewHTTPRemote creates a remote for endpoint. A non-positive timeout uses
// DefaultRemoteTimeout.
func NewHTTPRemote(endpoint string, timeout time.Duration) *HTTPRemote {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &HTTPRemote{
		endpoint: endpoint,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

// Submit makes a single attempt. Transport errors, timeouts and non-2xx
// responses all return an error.
func (h *HTTPRemote) Submit(ctx context.Context, r Record) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	body, err := json.Marshal(r.Payload())
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", h.endpoint, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
