package output

import (
	"encoding/json"
	"io"
)

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []Report `json:"reports"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// Write buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) Write(r Report) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
