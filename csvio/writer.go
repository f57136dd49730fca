package csvio

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Writer accumulates (t, s, f) solve samples and writes them to a
// semicolon-delimited CSV file on Close, the way the teacher's tools
// (e.g. tools/PlotLrm.go) build a bytes.Buffer and flush it with
// io.WriteFile in one shot rather than streaming rows one at a time.
type Writer struct {
	path string
	buf  bytes.Buffer
}

// NewWriter builds a Writer that will write to path on Close.
func NewWriter(path string) *Writer {
	w := &Writer{path: path}
	io.Ff(&w.buf, "Time;Spot;Value\n")
	return w
}

// Record implements scheme.Recorder.
func (w *Writer) Record(t, s, f float64) error {
	io.Ff(&w.buf, "%g;%g;%g\n", t, s, f)
	return nil
}

// Close flushes the accumulated rows to the Writer's path.
func (w *Writer) Close() error {
	io.WriteFile(w.path, &w.buf)
	return nil
}
