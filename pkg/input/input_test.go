package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-pix8/pix8/pkg/event"
	"github.com/go-pix8/pix8/pkg/graphics"
)

func TestApplyKeyHold(t *testing.T) {
	var s State

	s.Apply(event.KeyDown{Key: event.KeyLeft})
	snap := s.Take()
	assert.True(t, snap.Down(ButtonLeft))
	assert.False(t, snap.Down(ButtonRight))

	// Held state persists across snapshots until the key is released.
	snap = s.Take()
	assert.True(t, snap.Down(ButtonLeft))

	s.Apply(event.KeyUp{Key: event.KeyLeft})
	snap = s.Take()
	assert.False(t, snap.Down(ButtonLeft))
}

func TestActionButtonAliases(t *testing.T) {
	var s State

	s.Apply(event.KeyDown{Key: event.KeyC})
	assert.True(t, s.Take().Down(ButtonO))

	s.Apply(event.KeyDown{Key: event.KeyV})
	assert.True(t, s.Take().Down(ButtonX))

	// Releasing one alias releases the button even if another alias
	// pressed it; aliases share a single bit.
	s.Apply(event.KeyUp{Key: event.KeyN})
	assert.False(t, s.Take().Down(ButtonO))
}

func TestUnmappedKeysIgnored(t *testing.T) {
	var s State
	s.Apply(event.KeyDown{Key: event.KeyQ})
	assert.Equal(t, uint16(0), s.Take().Held)
}

func TestMouseTracking(t *testing.T) {
	var s State

	s.Apply(event.MouseMove{X: 42, Y: 17})
	s.Apply(event.MouseDown{Button: event.MouseLeft})
	snap := s.Take()
	assert.Equal(t, graphics.Pt(42, 17), snap.Mouse)
	assert.True(t, snap.Down(ButtonMouse))

	// Right button is delivered as an event but is not a console button.
	s.Apply(event.MouseUp{Button: event.MouseLeft})
	s.Apply(event.MouseDown{Button: event.MouseRight})
	assert.False(t, s.Take().Down(ButtonMouse))
}

func TestWheelResetsPerTick(t *testing.T) {
	var s State

	s.Apply(event.Wheel{DY: 2})
	s.Apply(event.Wheel{DY: -1})
	assert.Equal(t, 1, s.Take().Wheel)
	assert.Equal(t, 0, s.Take().Wheel)
}

func TestButtonStrings(t *testing.T) {
	assert.Equal(t, "o", ButtonO.String())
	assert.Equal(t, "mouse", ButtonMouse.String())
}
