package gateway

import (
	"fmt"
	"io"
	"time"
)

// SubmissionEvent records metadata about one submission attempt.
type SubmissionEvent struct {
	Endpoint   string
	FieldCount int
	StatusCode int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives submission events for logging.
type Observer interface {
	OnSubmission(event SubmissionEvent)
}

// LogObserver writes submission events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnSubmission(event SubmissionEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] submission endpoint=%s fields=%d http=%d latency_ms=%d status=%s\n",
		ts, event.Endpoint, event.FieldCount, event.StatusCode, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSubmission(SubmissionEvent) {}
