package model

import (
	"time"
)

// SessionModel accumulates how long frames have been monitored and how much
// of that time the alert rule held (every spot occupied). It is decoupled
// from the UI; presenters call OnTick and poll Values. The zero value is
// ready to use.
type SessionModel struct {
	active    bool
	last      time.Time
	monitored time.Duration
	full      time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the model. The interval since the previous tick counts as
// monitored when frames were flowing at both ends, and as full when the
// alert held at this tick.
func (m *SessionModel) OnTick(monitoring, alerting bool, now time.Time) {
	if m == nil {
		return
	}
	if !monitoring {
		m.active = false
		return
	}
	if m.active {
		if dt := now.Sub(m.last); dt > 0 {
			m.monitored += dt
			if alerting {
				m.full += dt
			}
		}
	}
	m.active = true
	m.last = now
}

// Values returns the monitored time and the part of it with all spots
// occupied.
func (m *SessionModel) Values() (monitored, full time.Duration) {
	if m == nil {
		return 0, 0
	}
	return m.monitored, m.full
}
