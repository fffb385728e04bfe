package model

import (
	"sync/atomic"
)

// CaptureModel tracks whether the frame loop is receiving frames. The zero
// value is stopped and usable.
type CaptureModel struct{ enabled atomic.Bool }

// Enabled reports whether frames are flowing.
func (m *CaptureModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the flag.
func (m *CaptureModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	m.enabled.Store(b)
}
