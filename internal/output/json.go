/*
PURPOSE:
  Writes execution records to a JSON Lines file (NDJSON).
  Optimized for machine parsing (jq, pandas, vecq).

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - JSON Lines is better for streaming than one large array.
  - Labels repeat by design, so every line carries its sequence number
    and a run id to keep records attributable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: internal/model.ExecutionRecord
  - Dependencies: github.com/google/uuid

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("results.jsonl")
  w.Write(record)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for streaming).
*/

package output

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/daryltucker/cmdbench/internal/model"
	"github.com/google/uuid"
)

// JSONRecord is the on-disk shape of one NDJSON line.
type JSONRecord struct {
	RunID           string `json:"run_id"`
	Sequence        int    `json:"sequence"`
	Group           string `json:"group"`
	Command         string `json:"command"`
	Label           string `json:"label"`
	ExecutionTimeNS int64  `json:"execution_time_ns"`
}

// JSONWriter handles writing records to a JSON Lines file.
type JSONWriter struct {
	closer  io.Closer
	encoder *json.Encoder
	runID   string
	seq     int
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter with a fresh run id.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return newJSONWriter(f, f, uuid.NewString()), nil
}

func newJSONWriter(w io.Writer, c io.Closer, runID string) *JSONWriter {
	return &JSONWriter{
		closer:  c,
		encoder: json.NewEncoder(w),
		runID:   runID,
	}
}

// RunID identifies every line written by this writer.
func (jw *JSONWriter) RunID() string { return jw.runID }

// Write writes a single record as a JSON line.
func (jw *JSONWriter) Write(r model.ExecutionRecord) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	jw.seq++
	return jw.encoder.Encode(JSONRecord{
		RunID:           jw.runID,
		Sequence:        jw.seq,
		Group:           r.Group,
		Command:         r.Command,
		Label:           r.Label(),
		ExecutionTimeNS: r.ExecutionTime.Nanoseconds(),
	})
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.closer.Close()
}
