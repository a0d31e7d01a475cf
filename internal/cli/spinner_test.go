package cli

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStop(t *testing.T) {
	status := isolate(t)
	s := newSpinner(context.Background(), "Resolving...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if !strings.Contains(status.String(), "Resolving...") {
		t.Errorf("spinner should draw its message, got %q", status.String())
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	isolate(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "Waiting...")
	s.Start()
	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	isolate(t)
	s := newSpinner(context.Background(), "Testing idempotent stop...")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithMessages(t *testing.T) {
	status := isolate(t)

	s := newSpinner(context.Background(), "a")
	s.Start()
	s.StopWithSuccess("Done")

	s = newSpinner(context.Background(), "b")
	s.Start()
	s.StopWithError("Failed")

	out := status.String()
	for _, want := range []string{iconSuccess + " Done", iconError + " Failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("status missing %q in %q", want, out)
		}
	}
}
