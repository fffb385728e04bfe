package presenter

import (
	"fmt"
	"time"

	"github.com/soocke/spot-marker-go/domain/editor"
)

// ModeSource provides the editor state and the zone count.
type ModeSource interface {
	State() editor.State
}

// ZoneCounter reports how many zones exist.
type ZoneCounter interface{ Len() int }

// ModeView sets the mode and zone count labels in the view.
type ModeView interface {
	SetModeLabel(string)
	SetZoneCount(string)
}

// ModePresenter receives editor transitions and zone count changes and
// reflects them in the view on the next tick.
type ModePresenter struct {
	eng       ModeSource
	zones     ZoneCounter
	view      ModeView
	latest    editor.State
	shown     bool
	lastCount int
	pending   []editor.State
}

func NewModePresenter(eng ModeSource, zones ZoneCounter, view ModeView) *ModePresenter {
	return &ModePresenter{eng: eng, zones: zones, view: view, lastCount: -1}
}

// OnState queues a transitioned state from the editor listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *ModePresenter) OnState(prev, next editor.State) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick processes queued states and updates the view with the most recent
// state and the current zone count.
func (p *ModePresenter) Tick(now time.Time) {
	if p == nil || p.eng == nil || p.view == nil {
		return
	}
	if !p.shown {
		p.shown = true
		p.latest = p.eng.State()
		p.view.SetModeLabel(modeLabel(p.latest))
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		if last != p.latest {
			p.latest = last
			p.view.SetModeLabel(modeLabel(last))
		}
	}
	if p.zones != nil {
		if n := p.zones.Len(); n != p.lastCount {
			p.lastCount = n
			p.view.SetZoneCount(fmt.Sprintf("Spots: %d", n))
		}
	}
}

func modeLabel(s editor.State) string {
	switch s {
	case editor.StateDeleteLast:
		return "Mode: delete-last ('d' or 'q' to return)"
	case editor.StateDeleteByClick:
		return "Mode: click-delete ('r' or 'q' to return)"
	default:
		return "Mode: " + s.String()
	}
}
