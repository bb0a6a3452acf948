// Package progrock records buildtools steps with progrock.
package progrock

import (
	"context"
	"io"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock recorder.
type Recorder struct {
	w        progrock.Writer
	tape     *progrock.Tape
	rec      *progrock.Recorder
	progress io.Writer
}

// New creates a new Recorder writing to an in-memory tape.
func New() *Recorder {
	tape := progrock.NewTape()
	r := NewRecorder(tape)
	r.tape = tape
	return r
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// SetProgress makes Close render the recorded steps to w.
// A nil writer disables rendering.
func (r *Recorder) SetProgress(w io.Writer) {
	r.progress = w
}

// Record starts a vertex named name and returns a context carrying it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session, then renders the tape
// when a progress writer is set.
func (r *Recorder) Close() error {
	if err := r.rec.Close(); err != nil {
		return err
	}
	if r.tape == nil || r.progress == nil {
		return nil
	}
	return r.tape.Render(r.progress, progrock.DefaultUI())
}
