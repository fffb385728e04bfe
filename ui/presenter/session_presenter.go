package presenter

import (
	"time"

	"github.com/soocke/spot-marker-go/ui/model"
)

// MonitoringModel reports whether frames are currently flowing.
type MonitoringModel interface{ Enabled() bool }

// AlertState reports whether the last frame raised the occupancy alert.
type AlertState interface{ Alerting() bool }

// SessionView displays the monitored time and the time with the lot full.
type SessionView interface {
	SetSession(monitored, full time.Duration)
}

// SessionPresenter feeds monitoring and alert state into the session model
// and pushes its durations to the view.
type SessionPresenter struct {
	sess    *model.SessionModel
	running MonitoringModel
	alert   AlertState
	view    SessionView
}

// NewSessionPresenter returns a new SessionPresenter. alert may be nil.
func NewSessionPresenter(sess *model.SessionModel, running MonitoringModel, alert AlertState, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, running: running, alert: alert, view: view}
}

// Tick advances the session model and updates the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.running == nil || p.view == nil {
		return
	}
	alerting := p.alert != nil && p.alert.Alerting()
	p.sess.OnTick(p.running.Enabled(), alerting, now)
	p.view.SetSession(p.sess.Values())
}
