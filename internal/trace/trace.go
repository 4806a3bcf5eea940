package trace

import (
	"fmt"

	"github.com/3ajes/URL/internal/model"
)

// Recorder collects the engine's trace events in emission order. One Recorder
// is created per scan; it is purely observational and never affects scoring.
type Recorder struct {
	events []model.TraceEvent
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Add appends a formatted event with the given severity.
func (r *Recorder) Add(sev model.Severity, format string, args ...any) {
	r.events = append(r.events, model.TraceEvent{
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
	})
}

func (r *Recorder) Info(format string, args ...any) {
	r.Add(model.SeverityInfo, format, args...)
}

func (r *Recorder) Warning(format string, args ...any) {
	r.Add(model.SeverityWarning, format, args...)
}

func (r *Recorder) Danger(format string, args ...any) {
	r.Add(model.SeverityDanger, format, args...)
}

func (r *Recorder) Success(format string, args ...any) {
	r.Add(model.SeveritySuccess, format, args...)
}

// Events returns the recorded events in chronological order.
func (r *Recorder) Events() []model.TraceEvent {
	return r.events
}
