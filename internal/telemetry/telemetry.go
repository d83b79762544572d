// Package telemetry provides a JSONL event stream for recording dasha
// computations. Each CLI invocation becomes a run with a unique ID, and
// every timeline generation, subdivision, and lookup result is recorded as
// a structured JSON event, making computations auditable and replayable.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindSnapshotStart     = "snapshot_start"
	KindSnapshotDone      = "snapshot_done"
	KindSnapshotNotFound  = "snapshot_not_found"
	KindTransitionDone    = "transition_done"
	KindTimelineGenerated = "timeline_generated"
)

// Event represents a single telemetry record. Each event carries a
// timestamp, a kind tag, and the run it belongs to, along with arbitrary
// structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	RunID     string    `json:"run"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for
// concurrent use by multiple goroutines. A nil *Emitter is a valid no-op
// emitter.
type Emitter struct {
	file  *os.File
	enc   *json.Encoder
	runID string
	mu    sync.Mutex
}

// NewEmitter creates an Emitter that appends JSONL events to the file at
// path, tagging every event with a fresh run ID.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:  f,
		enc:   json.NewEncoder(f),
		runID: uuid.NewString(),
	}, nil
}

// RunID returns the identifier shared by all events of this emitter.
// Empty for a nil emitter.
func (e *Emitter) RunID() string {
	if e == nil {
		return ""
	}
	return e.runID
}

// Emit writes one event. Emit on a nil emitter does nothing.
func (e *Emitter) Emit(kind string, data any) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enc.Encode(Event{
		Timestamp: time.Now().UTC(),
		Kind:      kind,
		RunID:     e.runID,
		Data:      data,
	})
}

// Close flushes and closes the underlying file. Close on a nil emitter
// does nothing.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.file.Close()
}
