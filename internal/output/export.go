package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/daryltucker/cmdbench/internal/model"
)

// RecordWriter is implemented by CSVWriter and JSONWriter.
type RecordWriter interface {
	Write(r model.ExecutionRecord) error
	Close() error
}

// FormatFor picks "json" for .json/.jsonl/.ndjson paths and "csv" otherwise.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".ndjson":
		return "json"
	default:
		return "csv"
	}
}

// NewWriter opens path for the given format ("csv" or "json").
// header only affects CSV.
func NewWriter(path, format string, header bool) (RecordWriter, error) {
	switch strings.ToLower(format) {
	case "csv":
		return NewCSVWriter(path, header)
	case "json":
		return NewJSONWriter(path)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// Export writes every record in order and closes w.
func Export(w RecordWriter, records []model.ExecutionRecord) error {
	for i, r := range records {
		if err := w.Write(r); err != nil {
			return errors.Join(fmt.Errorf("failed to write record %d (%s): %w", i, r.Label(), err), w.Close())
		}
	}
	return w.Close()
}
