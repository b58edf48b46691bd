package engine

import (
	"time"

	"github.com/daryltucker/cmdbench/internal/model"
)

// Recorder accumulates execution records in the order they are produced.
// No sorting, merging or deduplication happens here.
type Recorder struct {
	records []model.ExecutionRecord
}

func (r *Recorder) add(group, command string, elapsed time.Duration) {
	r.records = append(r.records, model.ExecutionRecord{
		Group:         group,
		Command:       command,
		ExecutionTime: elapsed,
	})
}

// Len returns the number of records collected so far.
func (r *Recorder) Len() int { return len(r.records) }

// Records returns a copy of the collected records.
func (r *Recorder) Records() []model.ExecutionRecord {
	out := make([]model.ExecutionRecord, len(r.records))
	copy(out, r.records)
	return out
}
