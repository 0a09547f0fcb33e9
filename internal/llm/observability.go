package llm

import (
	"fmt"
	"io"
	"time"
)

// CallKind identifies which gateway operation an event belongs to.
type CallKind string

const (
	KindComplete   CallKind = "complete"
	KindTranscribe CallKind = "transcribe"
)

// CallEvent records metadata about a single gateway invocation.
type CallEvent struct {
	Kind      CallKind
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about gateway calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes gateway call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call kind=%s model=%s latency_ms=%d status=%s\n",
		ts, event.Kind, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
