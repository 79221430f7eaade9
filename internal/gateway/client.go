// Package gateway sends completed questionnaires to the external workflow
// endpoint. The endpoint is an opaque HTTP sink: any 2xx response is
// success, everything else is a user-retryable failure. The gateway never
// touches form state or storage; sequencing after an Ack belongs to the
// caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/google/uuid"
)

// Ack acknowledges a successful submission.
type Ack struct {
	StatusCode int
	ReceiptID  string
	ReceivedAt time.Time
}

// Client submits a full snapshot to the workflow endpoint.
type Client interface {
	Submit(ctx context.Context, snap domain.FullSnapshot) (*Ack, error)
}

type workflowClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewWorkflowClient creates a Client for the configured endpoint.
func NewWorkflowClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &workflowClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ackBody is the optional JSON shape some workflow deployments return.
type ackBody struct {
	ReceiptID string `json:"receiptId"`
}

func (c *workflowClient) Submit(ctx context.Context, snap domain.FullSnapshot) (*Ack, error) {
	if snap.IsEmpty() {
		return nil, ErrEmptyPayload
	}

	start := time.Now()
	submissionID := uuid.New().String()

	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding submission: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Submission-Id", submissionID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(start, len(snap), 0, "network")
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(start, len(snap), resp.StatusCode, "network")
		return nil, fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe(start, len(snap), resp.StatusCode, "endpoint")
		return nil, fmt.Errorf("%w: status %d: %s", ErrEndpoint, resp.StatusCode, truncate(body, 200))
	}

	receipt := submissionID
	var parsed ackBody
	if json.Unmarshal(body, &parsed) == nil && parsed.ReceiptID != "" {
		receipt = parsed.ReceiptID
	}

	c.observer.OnSubmission(SubmissionEvent{
		Endpoint:   c.cfg.Endpoint,
		FieldCount: len(snap),
		StatusCode: resp.StatusCode,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    true,
	})

	return &Ack{
		StatusCode: resp.StatusCode,
		ReceiptID:  receipt,
		ReceivedAt: time.Now().UTC(),
	}, nil
}

func (c *workflowClient) observe(start time.Time, fields, status int, code string) {
	c.observer.OnSubmission(SubmissionEvent{
		Endpoint:   c.cfg.Endpoint,
		FieldCount: fields,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    false,
		ErrorCode:  code,
	})
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
