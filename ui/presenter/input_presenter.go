package presenter

import (
	"log/slog"

	"github.com/soocke/spot-marker-go/domain/editor"
	"github.com/soocke/spot-marker-go/metrics"
)

// EventSource yields the input events buffered since the last drain.
type EventSource interface {
	Drain() []editor.Event
}

// EventHandler applies a single input event.
type EventHandler interface {
	Handle(editor.Event) editor.Outcome
}

// StatusView shows the latest operator message.
type StatusView interface{ SetStatus(string) }

// InputPresenter drains queued input into the editor. It is the only place
// where zone store mutations happen.
type InputPresenter struct {
	Queue   EventSource
	Editor  EventHandler
	View    StatusView
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Dispatch feeds every queued event to the editor in order. It stops early
// when an event asks to quit; remaining events are discarded.
func (p *InputPresenter) Dispatch() (quit, redraw bool) {
	if p == nil || p.Queue == nil || p.Editor == nil {
		return false, false
	}
	for _, ev := range p.Queue.Drain() {
		out := p.Editor.Handle(ev)
		if p.Metrics != nil {
			p.Metrics.InputEvents.Add(1)
			if out.Err != nil && isSaveFailure(out.Err) {
				p.Metrics.SaveFailures.Add(1)
			}
		}
		if out.Message != "" && p.View != nil {
			status := out.Message
			if out.Err != nil && isSaveFailure(out.Err) {
				status += ": " + out.Err.Error()
			}
			p.View.SetStatus(status)
		}
		redraw = redraw || out.Redraw
		if out.Quit {
			if p.Logger != nil {
				p.Logger.Info("quit requested")
			}
			return true, redraw
		}
	}
	return false, redraw
}
