// Package event defines the platform event model delivered to applications
// and widgets: the per-frame tick, window close, and raw input events.
//
// Event is a sealed marker interface; the concrete types in this package are
// the only implementations. Input events additionally satisfy InputEvent so
// the frame driver can route them into the input accumulator.
package event

import "time"

// Event is a platform event delivered to the frame driver.
type Event interface {
	isEvent()
}

// InputEvent is an Event originating from user input. Input events are
// buffered between ticks and merged into console input state at the next
// tick boundary.
type InputEvent interface {
	Event
	isInput()
}

// Tick is delivered once per frame at the fixed tick cadence.
type Tick struct {
	// Delta is the time elapsed since the previous tick.
	Delta time.Duration
}

// Closed signals that the window or terminal session ended. The frame
// driver terminates without running further update or draw passes.
type Closed struct{}

// KeyDown reports a key being pressed.
type KeyDown struct {
	Key Key
}

// KeyUp reports a key being released.
type KeyUp struct {
	Key Key
}

// MouseMove reports the pointer moving to a console pixel position.
type MouseMove struct {
	X, Y int
}

// MouseDown reports a mouse button being pressed.
type MouseDown struct {
	Button MouseButton
}

// MouseUp reports a mouse button being released.
type MouseUp struct {
	Button MouseButton
}

// Wheel reports vertical scroll movement. Positive DY scrolls up.
type Wheel struct {
	DY int
}

func (Tick) isEvent()      {}
func (Closed) isEvent()    {}
func (KeyDown) isEvent()   {}
func (KeyUp) isEvent()     {}
func (MouseMove) isEvent() {}
func (MouseDown) isEvent() {}
func (MouseUp) isEvent()   {}
func (Wheel) isEvent()     {}

func (KeyDown) isInput()   {}
func (KeyUp) isInput()     {}
func (MouseMove) isInput() {}
func (MouseDown) isInput() {}
func (MouseUp) isInput()   {}
func (Wheel) isInput()     {}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "unknown"
	}
}
