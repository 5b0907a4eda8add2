// Package input accumulates raw input events between frame ticks and
// exposes per-tick snapshots of the console controls.
//
// The frame driver applies every input event to a State as it arrives;
// at each tick boundary it takes a Snapshot and merges it into console
// state. The snapshot model is what gives Btnp its edge-trigger semantics:
// the console compares consecutive snapshots, never the raw event stream.
package input

import (
	"github.com/go-pix8/pix8/pkg/event"
	"github.com/go-pix8/pix8/pkg/graphics"
)

// Button identifies one of the console's controls.
type Button uint8

const (
	// ButtonLeft through ButtonDown are the directional pad.
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	// ButtonO and ButtonX are the two action buttons. On keyboards,
	// O maps to Z/C/N and X maps to X/V/M.
	ButtonO
	ButtonX
	// ButtonMouse is the left mouse button.
	ButtonMouse

	numButtons
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonO:
		return "o"
	case ButtonX:
		return "x"
	case ButtonMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// bit returns the mask bit for b.
func (b Button) bit() uint16 {
	return 1 << b
}

// Snapshot is the control state captured at a tick boundary.
type Snapshot struct {
	// Held is a bitmask of buttons currently held, indexed by Button.
	Held uint16
	// Mouse is the last reported pointer position.
	Mouse graphics.Point
	// Wheel is the scroll distance accumulated since the previous snapshot.
	Wheel int
}

// Down reports whether b is held in the snapshot.
func (s Snapshot) Down(b Button) bool {
	return s.Held&b.bit() != 0
}

// State accumulates input events between ticks. The zero value is ready
// to use. State is not safe for concurrent use; the frame driver owns it.
type State struct {
	held  uint16
	mouse graphics.Point
	wheel int
}

// Apply folds one raw input event into the accumulated state.
func (s *State) Apply(ev event.InputEvent) {
	switch e := ev.(type) {
	case event.KeyDown:
		if b, ok := buttonForKey(e.Key); ok {
			s.held |= b.bit()
		}
	case event.KeyUp:
		if b, ok := buttonForKey(e.Key); ok {
			s.held &^= b.bit()
		}
	case event.MouseMove:
		s.mouse = graphics.Pt(e.X, e.Y)
	case event.MouseDown:
		if e.Button == event.MouseLeft {
			s.held |= ButtonMouse.bit()
		}
	case event.MouseUp:
		if e.Button == event.MouseLeft {
			s.held &^= ButtonMouse.bit()
		}
	case event.Wheel:
		s.wheel += e.DY
	}
}

// Take returns the current snapshot and resets the per-tick accumulators.
// Button and pointer state persist across snapshots; wheel distance does not.
func (s *State) Take() Snapshot {
	snap := Snapshot{Held: s.held, Mouse: s.mouse, Wheel: s.wheel}
	s.wheel = 0
	return snap
}

// buttonForKey maps keyboard keys to console buttons.
func buttonForKey(k event.Key) (Button, bool) {
	switch k {
	case event.KeyLeft:
		return ButtonLeft, true
	case event.KeyRight:
		return ButtonRight, true
	case event.KeyArrowUp:
		return ButtonUp, true
	case event.KeyArrowDown:
		return ButtonDown, true
	case event.KeyZ, event.KeyC, event.KeyN:
		return ButtonO, true
	case event.KeyX, event.KeyV, event.KeyM:
		return ButtonX, true
	}
	return 0, false
}
