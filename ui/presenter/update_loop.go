package presenter

import "time"

// Capture records whether frames are flowing.
type Capture interface{ SetEnabled(bool) }

// Sampler receives a call on every tick; used for periodic debug output.
type Sampler interface{ Sample(now time.Time) }

// Loop is the frame loop orchestrator. Each Tick acquires and renders one
// frame, evaluates the alert, dispatches the buffered input and schedules
// the next tick. It is the only loop; editor modes are plain state.
//
// Stop is called exactly once: with nil after a quit command, or with the
// frame read error that ended the loop. No tick is scheduled afterwards.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Frame    *FramePresenter
	Input    *InputPresenter
	Mode     *ModePresenter
	Session  *SessionPresenter
	Capture  Capture
	Sampler  Sampler
	Schedule func()
	Stop     func(err error)

	stopped bool
}

func NewLoop(frame *FramePresenter, input *InputPresenter, mode *ModePresenter, sess *SessionPresenter, schedule func(), stop func(error)) *Loop {
	return &Loop{Frame: frame, Input: input, Mode: mode, Session: sess, Schedule: schedule, Stop: stop}
}

func (l *Loop) Tick() {
	if l == nil || l.stopped {
		return
	}
	now := time.Now()
	if err := l.Frame.Render(); err != nil {
		l.stop(errFrameLoop(err))
		return
	}
	if l.Capture != nil {
		l.Capture.SetEnabled(true)
	}
	quit, redraw := l.Input.Dispatch()
	if quit {
		l.stop(nil)
		return
	}
	if redraw {
		// Redraw right away on a fresh frame so deletions show up without
		// waiting for the next tick.
		if err := l.Frame.Redraw(); err != nil {
			l.stop(errFrameLoop(err))
			return
		}
	}
	if l.Mode != nil {
		l.Mode.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Sampler != nil {
		l.Sampler.Sample(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

// Quit ends the loop as if the quit key had been pressed in idle mode. It is
// used for the window close button.
func (l *Loop) Quit() {
	if l == nil || l.stopped {
		return
	}
	l.stop(nil)
}

// Stopped reports whether the loop has ended.
func (l *Loop) Stopped() bool { return l != nil && l.stopped }

func (l *Loop) stop(err error) {
	l.stopped = true
	if l.Capture != nil {
		l.Capture.SetEnabled(false)
	}
	if l.Frame != nil {
		l.Frame.Close()
	}
	if l.Stop != nil {
		l.Stop(err)
	}
}
