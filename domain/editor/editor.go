// Package editor implements the interactive region editor: a four-state
// machine that turns pointer and key events into zone store mutations.
package editor

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/spot-marker-go/domain/geometry"
	"github.com/soocke/spot-marker-go/domain/zone"
)

// Editor owns the interaction state. All methods must be called from the
// frame loop goroutine.
type Editor struct {
	store     *zone.Store
	path      string
	logger    *slog.Logger
	state     State
	press     image.Point
	cursor    image.Point
	listeners []Listener
}

// New returns an idle editor mutating store and persisting to path.
func New(store *zone.Store, path string, logger *slog.Logger) *Editor {
	return &Editor{store: store, path: path, logger: logger, state: StateIdle}
}

// State returns the current mode.
func (e *Editor) State() State { return e.state }

// AddListener registers l for state changes.
func (e *Editor) AddListener(l Listener) { e.listeners = append(e.listeners, l) }

// Preview returns the live rectangle of an ongoing drag.
func (e *Editor) Preview() ([]image.Point, bool) {
	if e.state != StateDragging {
		return nil, false
	}
	return geometry.RectangleFromCorners(e.press, e.cursor), true
}

// Handle applies ev and reports its effect.
func (e *Editor) Handle(ev Event) Outcome {
	if ev.deleteModifier() {
		out := e.deleteAt(ev.Pos)
		out.Redraw = true
		return out
	}
	if ev.Kind == EventPointerDown && ev.Button == ButtonSecondary {
		if e.state == StateDragging {
			return Outcome{}
		}
		return e.toggleAt(ev.Pos)
	}
	switch e.state {
	case StateIdle:
		return e.handleIdle(ev)
	case StateDragging:
		return e.handleDragging(ev)
	case StateDeleteLast:
		if ev.Kind == EventKey && (ev.Key == KeyQuit || ev.Key == KeyDraw) {
			e.transition(StateIdle)
			return Outcome{Redraw: true}
		}
	case StateDeleteByClick:
		switch {
		case ev.Kind == EventPointerDown && ev.Button == ButtonPrimary:
			return e.deleteAt(ev.Pos)
		case ev.Kind == EventKey && (ev.Key == KeyQuit || ev.Key == KeyClickDelete):
			e.transition(StateIdle)
			return Outcome{Redraw: true}
		}
	}
	return Outcome{}
}

func (e *Editor) handleIdle(ev Event) Outcome {
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button != ButtonPrimary {
			return Outcome{}
		}
		e.press, e.cursor = ev.Pos, ev.Pos
		e.transition(StateDragging)
		return Outcome{Redraw: true}
	case EventKey:
		switch ev.Key {
		case KeyQuit:
			return Outcome{Quit: true}
		case KeySave:
			return e.save()
		case KeyDraw:
			return e.report(Outcome{Message: "draw mode: drag with the mouse to mark a parking spot"})
		case KeyDeleteLast:
			out := e.deleteLast()
			e.transition(StateDeleteLast)
			out.Redraw = true
			return out
		case KeyClickDelete:
			e.transition(StateDeleteByClick)
			return e.report(Outcome{Redraw: true, Message: "delete mode: click a parking spot to delete it, 'r' to leave"})
		}
	}
	return Outcome{}
}

func (e *Editor) handleDragging(ev Event) Outcome {
	switch ev.Kind {
	case EventPointerMove:
		e.cursor = ev.Pos
		return Outcome{Redraw: true}
	case EventPointerUp:
		e.cursor = ev.Pos
		poly := geometry.RectangleFromCorners(e.press, ev.Pos)
		e.transition(StateIdle)
		if geometry.Degenerate(poly) {
			return e.report(Outcome{Redraw: true, Message: "parking spot discarded: zero width or height"})
		}
		var coords [zone.Points]image.Point
		copy(coords[:], poly)
		z := e.store.Append(coords)
		return e.report(Outcome{Redraw: true, Message: fmt.Sprintf("added %s", z.Name)})
	case EventKey:
		if ev.Key == KeyQuit {
			e.transition(StateIdle)
			return Outcome{Quit: true}
		}
	}
	return Outcome{}
}

func (e *Editor) save() Outcome {
	err := e.store.Save(e.path)
	switch {
	case err == nil:
		return e.report(Outcome{Message: fmt.Sprintf("saved %d parking spots to %s", e.store.Len(), e.path)})
	case errors.Is(err, zone.ErrNoSpotsToSave):
		return e.report(Outcome{Message: "no parking spots to save, mark some first", Err: err})
	default:
		return e.report(Outcome{Message: "save failed", Err: err})
	}
}

func (e *Editor) deleteLast() Outcome {
	z, err := e.store.RemoveLast()
	if err != nil {
		return e.report(Outcome{Message: "no parking spots to delete", Err: err})
	}
	return e.persistAfterDelete(z)
}

func (e *Editor) deleteAt(p image.Point) Outcome {
	i, ok := e.store.HitTest(p)
	if !ok {
		return e.report(Outcome{Message: "no parking spot under the pointer", Err: zone.ErrIndexOutOfRange})
	}
	z, err := e.store.RemoveAt(i)
	if err != nil {
		return e.report(Outcome{Message: "delete failed", Err: err})
	}
	out := e.persistAfterDelete(z)
	out.Redraw = true
	return out
}

// persistAfterDelete writes the store after a removal. An emptied store is
// reported as ErrNoSpotsToSave and leaves the previous file in place; the
// message says so, since those spots come back on the next start.
func (e *Editor) persistAfterDelete(z zone.Zone) Outcome {
	msg := fmt.Sprintf("deleted %s", z.Name)
	if err := e.store.Save(e.path); err != nil {
		if errors.Is(err, zone.ErrNoSpotsToSave) {
			return e.report(Outcome{
				Message: fmt.Sprintf("%s; no parking spots left to save, %s still holds the previous spots", msg, e.path),
				Err:     err,
			})
		}
		return e.report(Outcome{Message: msg + "; save failed", Err: err})
	}
	return e.report(Outcome{Message: msg})
}

func (e *Editor) toggleAt(p image.Point) Outcome {
	i, ok := e.store.HitTest(p)
	if !ok {
		return Outcome{}
	}
	z, err := e.store.ToggleAvailable(i)
	if err != nil {
		return e.report(Outcome{Err: err})
	}
	status := "occupied"
	if z.Available {
		status = "available"
	}
	return e.report(Outcome{Redraw: true, Message: fmt.Sprintf("%s marked %s", z.Name, status)})
}

func (e *Editor) report(out Outcome) Outcome {
	if e.logger == nil || (out.Message == "" && out.Err == nil) {
		return out
	}
	if out.Err != nil {
		e.logger.Warn(out.Message, "error", out.Err, "state", e.state.String())
	} else {
		e.logger.Info(out.Message, "state", e.state.String())
	}
	return out
}

func (e *Editor) transition(next State) {
	prev := e.state
	if prev == next {
		return
	}
	e.state = next
	if e.logger != nil {
		e.logger.Debug("editor state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range e.listeners {
		l(prev, next)
	}
}
