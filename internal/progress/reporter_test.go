package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/craftfolio/internal/contact"
)

func TestCIReporterLines(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{w: &buf}
	for _, s := range []contact.State{contact.Validating, contact.SubmittingRemote, contact.RemoteOK} {
		r.Observe(s)
	}
	r.Finish()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[1] != "[SUBMITTING_REMOTE] Sending to server" {
		t.Errorf("line = %q", lines[1])
	}
	if lines[2] != "[REMOTE_OK]" {
		t.Errorf("line = %q", lines[2])
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestTerminalReporterIgnoresOutcomes(t *testing.T) {
	r := &TerminalReporter{}
	r.Observe(contact.RemoteOK)
	if r.bar != nil {
		t.Error("bar should only start on an attempt state")
	}
	r.Finish()
}
