package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/variantkit-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// Write writes a single report to the output.
	Write(r Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// New returns the writer selected by cfg: one JSON object per line for the
// json format, text lines otherwise.
func New(cfg *config.OutputConfig) ReportWriter {
	if cfg.JSON() {
		return NewJSONWriterSingle(cfg.Writer)
	}
	return NewTextWriter(cfg.Writer)
}

// TextWriter writes one line per report.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write writes the text form of r followed by a newline.
func (tw *TextWriter) Write(r Report) error {
	if _, err := tw.w.WriteString(r.Text()); err != nil {
		return err
	}
	return tw.w.WriteByte('\n')
}

// Flush flushes buffered lines.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}
