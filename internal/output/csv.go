/*
PURPOSE:
  Writes execution records to a CSV file.
  Two columns: label and elapsed nanoseconds.

REQUIREMENTS:
  User-specified:
  - Output to CSV.
  - One row per record, in execution order.

  Implementation-discovered:
  - Header row is optional; older consumers expect bare rows.
  - Original tool overwrote the output file, so do we.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: internal/model.ExecutionRecord

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (crash resilience).

USAGE:
  w, err := output.NewCSVWriter("results.csv", true)
  w.Write(record)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when ExecutionRecord changes.
*/

package output

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/cmdbench/internal/model"
)

// CSVHeader is written first when a header is requested.
var CSVHeader = []string{"name", "execution_time_ns"}

// CSVWriter handles writing records to a CSV file.
type CSVWriter struct {
	closer io.Closer
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string, header bool) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	cw, err := newCSVWriter(f, f, header)
	if err != nil {
		f.Close()
		return nil, err
	}
	return cw, nil
}

func newCSVWriter(w io.Writer, c io.Closer, header bool) (*CSVWriter, error) {
	cw := &CSVWriter{closer: c, writer: csv.NewWriter(w)}

	if header {
		if err := cw.writer.Write(CSVHeader); err != nil {
			return nil, err
		}
		cw.writer.Flush()
		if err := cw.writer.Error(); err != nil {
			return nil, err
		}
	}

	return cw, nil
}

// Write writes a single record to the CSV file.
func (cw *CSVWriter) Write(r model.ExecutionRecord) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	row := []string{
		r.Label(),
		strconv.FormatInt(r.ExecutionTime.Nanoseconds(), 10),
	}

	if err := cw.writer.Write(row); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close flushes and closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		cw.closer.Close()
		return err
	}
	return cw.closer.Close()
}
