package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/craftfolio/internal/config"
	"github.com/ziadkadry99/craftfolio/internal/reveal"
)

func TestScrollPath(t *testing.T) {
	revealFrom, revealTo, revealStep = 0, 100, 50
	if got := scrollPath(); len(got) != 3 || got[2] != 100 {
		t.Errorf("down path = %v, want [0 50 100]", got)
	}
	revealFrom, revealTo = 100, 0
	if got := scrollPath(); len(got) != 3 || got[0] != 100 || got[2] != 0 {
		t.Errorf("up path = %v, want [100 50 0]", got)
	}
}

func TestApplyConfiguredPresets(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Reveal.Groups["form"] = reveal.Preset{Step: 40 * time.Millisecond, Cap: 400 * time.Millisecond}

	l := &reveal.Layout{Groups: []reveal.GroupSpec{
		{Name: "contact", Preset: "form"},
		{Name: "pinned", Preset: "form", Step: 10 * time.Millisecond},
	}}
	applyConfiguredPresets(l, cfg)

	if l.Groups[0].Step != 40*time.Millisecond || l.Groups[0].Cap != 400*time.Millisecond {
		t.Errorf("configured preset not applied: %+v", l.Groups[0])
	}
	if l.Groups[1].Step != 10*time.Millisecond {
		t.Errorf("explicit step overwritten: %v", l.Groups[1].Step)
	}
}

func TestSimulateManualCoalescesFrames(t *testing.T) {
	l, err := reveal.LoadLayout("../testdata/layout.yml")
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	var out bytes.Buffer
	sink := newTableSink(&out)
	scroll := reveal.NewScrollContext(l.ViewportHeight)
	engine := reveal.NewEngine(*l, reveal.DefaultParams(), scroll, sink)
	observer := reveal.NewObserver(engine)

	revealFrom, revealTo, revealStep, revealEventsPerFrame = 0, 3000, 50, 3
	events := simulateManual(scroll, func() {
		sink.frame(scroll.Snapshot())
		engine.Recompute()
		observer.Check()
	})
	if err := sink.flush(); err != nil {
		t.Fatal(err)
	}

	if events != 61 {
		t.Fatalf("events = %d, want 61", events)
	}
	// One load frame plus one frame per three events, rounded up.
	if got := engine.Recomputes(); got != 22 {
		t.Errorf("recomputes = %d, want 22", got)
	}
	for _, want := range []string{"about", "info/info-email", "form/form-message", "hero"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}
