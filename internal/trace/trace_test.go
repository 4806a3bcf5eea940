package trace_test

import (
	"testing"

	"github.com/3ajes/URL/internal/model"
	"github.com/3ajes/URL/internal/trace"
)

func TestRecorderPreservesOrder(t *testing.T) {
	t.Parallel()
	rec := trace.NewRecorder()
	rec.Info("host resolved: %s", "example.com")
	rec.Warning("insecure protocol")
	rec.Danger("raw IP host")
	rec.Success("done")

	events := rec.Events()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	wantSeverities := []model.Severity{
		model.SeverityInfo,
		model.SeverityWarning,
		model.SeverityDanger,
		model.SeveritySuccess,
	}
	for i, want := range wantSeverities {
		if events[i].Severity != want {
			t.Errorf("event %d severity = %q, want %q", i, events[i].Severity, want)
		}
	}
	if events[0].Message != "host resolved: example.com" {
		t.Errorf("formatting lost: %q", events[0].Message)
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	t.Parallel()
	a := trace.NewRecorder()
	b := trace.NewRecorder()
	a.Info("only in a")
	if len(b.Events()) != 0 {
		t.Fatal("recorders must not share state")
	}
}
