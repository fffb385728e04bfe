package model

import (
	"testing"
	"time"
)

func TestSessionModel_AccumulatesMonitoredAndFull(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	m.OnTick(true, false, base)
	m.OnTick(true, false, base.Add(5*time.Second))
	monitored, full := m.Values()
	if monitored != 5*time.Second || full != 0 {
		t.Fatalf("expected 5s monitored, 0 full; got %v %v", monitored, full)
	}

	// Alert holds for 3s.
	m.OnTick(true, true, base.Add(8*time.Second))
	monitored, full = m.Values()
	if monitored != 8*time.Second || full != 3*time.Second {
		t.Fatalf("expected 8s/3s; got %v %v", monitored, full)
	}

	// Frames stop; the gap is not counted.
	m.OnTick(false, false, base.Add(9*time.Second))
	m.OnTick(true, false, base.Add(20*time.Second))
	m.OnTick(true, false, base.Add(21*time.Second))
	monitored, full = m.Values()
	if monitored != 9*time.Second || full != 3*time.Second {
		t.Fatalf("gap must not count: got %v %v", monitored, full)
	}
}

func TestSessionModel_ClockGoingBackwards(t *testing.T) {
	var m SessionModel
	base := time.Unix(100, 0)
	m.OnTick(true, true, base)
	m.OnTick(true, true, base.Add(-time.Second))
	if monitored, full := m.Values(); monitored != 0 || full != 0 {
		t.Fatalf("negative intervals must be ignored, got %v %v", monitored, full)
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnTick(true, true, time.Now())
	if a, b := m.Values(); a != 0 || b != 0 {
		t.Fatalf("nil model should report zero")
	}
}
