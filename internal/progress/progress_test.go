package progress

import (
	"testing"
	"time"
)

func TestTrackerNeverPassesCeiling(t *testing.T) {
	tr := NewTracker()
	tr.Interval = time.Millisecond

	tr.Start()
	time.Sleep(60 * time.Millisecond)

	snap := tr.Snapshot()
	if !snap.Active {
		t.Errorf("wrong result, expected active tracker")
	}
	if snap.Value > 95 {
		t.Errorf("wrong result, value %v passed the ceiling before finish", snap.Value)
	}
	if snap.Value == 0 {
		t.Errorf("wrong result, value did not advance")
	}
}

func TestTrackerFinishFades(t *testing.T) {
	tr := NewTracker()
	tr.Interval = time.Millisecond
	tr.FadeDelay = 20 * time.Millisecond

	tr.Start()
	tr.Finish()

	snap := tr.Snapshot()
	if !snap.Active || snap.Value != 100 {
		t.Errorf("wrong result, expected active at 100, got %#v", snap)
	}

	time.Sleep(80 * time.Millisecond)
	snap = tr.Snapshot()
	if snap.Active || snap.Value != 0 {
		t.Errorf("wrong result, expected inactive at 0, got %#v", snap)
	}
}

func TestTrackerRestartCancelsFade(t *testing.T) {
	tr := NewTracker()
	tr.Interval = time.Hour
	tr.FadeDelay = 20 * time.Millisecond

	tr.Start()
	tr.Finish()
	tr.Start()

	time.Sleep(60 * time.Millisecond)
	snap := tr.Snapshot()
	if !snap.Active || snap.Value != 0 {
		t.Errorf("wrong result, expected fresh active run, got %#v", snap)
	}
}
