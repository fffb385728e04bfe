package editor

import "image"

// State enumerates the editor interaction modes.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateDeleteLast
	StateDeleteByClick
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDeleteLast:
		return "delete-last"
	case StateDeleteByClick:
		return "click-delete"
	default:
		return "unknown"
	}
}

// Key bindings. Lowercase and case-sensitive.
const (
	KeyQuit        = 'q'
	KeySave        = 's'
	KeyDraw        = 'd'
	KeyDeleteLast  = 'x'
	KeyClickDelete = 'r'
)

// EventKind distinguishes pointer and key events.
type EventKind int

const (
	EventPointerDown EventKind = iota + 1
	EventPointerMove
	EventPointerUp
	EventKey
)

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary   Button = 1
	ButtonSecondary Button = 3
)

// Modifier is a bit set of keyboard modifiers held during a pointer press.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// Event is a single input event in frame coordinates.
type Event struct {
	Kind   EventKind
	Pos    image.Point
	Button Button
	Mods   Modifier
	Key    rune
}

func PointerDown(p image.Point, mods Modifier) Event {
	return Event{Kind: EventPointerDown, Pos: p, Button: ButtonPrimary, Mods: mods}
}
func SecondaryDown(p image.Point) Event {
	return Event{Kind: EventPointerDown, Pos: p, Button: ButtonSecondary}
}
func PointerMove(p image.Point) Event { return Event{Kind: EventPointerMove, Pos: p} }
func PointerUp(p image.Point) Event {
	return Event{Kind: EventPointerUp, Pos: p, Button: ButtonPrimary}
}
func KeyPress(r rune) Event { return Event{Kind: EventKey, Key: r} }

func (e Event) deleteModifier() bool {
	return e.Kind == EventPointerDown && e.Button == ButtonPrimary && e.Mods&(ModCtrl|ModAlt) != 0
}

// Outcome reports the effect of a handled event to the frame loop.
type Outcome struct {
	// Quit asks the frame loop to stop and release resources.
	Quit bool
	// Redraw asks for an immediate overlay refresh.
	Redraw bool
	// Message is an operator-facing status line; empty means nothing to report.
	Message string
	// Err carries a reported, non-fatal condition such as zone.ErrEmptyStore.
	Err error
}

// Listener is called on each state change.
type Listener func(prev, next State)
