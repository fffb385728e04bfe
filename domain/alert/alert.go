// Package alert delivers the audible "all spots occupied" warning.
package alert

import (
	"log/slog"
	"time"
)

// Alerter raises an audible alert carrying msg.
type Alerter interface {
	Alert(msg string) error
}

// Func adapts a plain function to Alerter.
type Func func(msg string) error

func (f Func) Alert(msg string) error { return f(msg) }

// Throttled forwards at most one alert per cooldown to the wrapped alerter.
// The frame loop evaluates the alert rule on every frame, so without it the
// platform sound would be retriggered dozens of times per second.
type Throttled struct {
	inner    Alerter
	cooldown time.Duration
	logger   *slog.Logger
	now      func() time.Time
	last     time.Time
}

// NewThrottled wraps inner. A zero cooldown forwards every alert.
func NewThrottled(inner Alerter, cooldown time.Duration, logger *slog.Logger) *Throttled {
	return &Throttled{inner: inner, cooldown: cooldown, logger: logger, now: time.Now}
}

// Alert forwards msg unless an alert was forwarded within the cooldown.
// Suppressed alerts return nil.
func (t *Throttled) Alert(msg string) error {
	if t == nil || t.inner == nil {
		return nil
	}
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.cooldown {
		return nil
	}
	t.last = now
	if err := t.inner.Alert(msg); err != nil {
		if t.logger != nil {
			t.logger.Error("alert failed", "error", err)
		}
		return err
	}
	if t.logger != nil {
		t.logger.Warn("occupancy alert", "message", msg)
	}
	return nil
}

// Reset clears the cooldown so the next alert is forwarded immediately.
func (t *Throttled) Reset() {
	if t != nil {
		t.last = time.Time{}
	}
}
