package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputEventClassification(t *testing.T) {
	inputs := []Event{
		KeyDown{Key: KeyZ},
		KeyUp{Key: KeyZ},
		MouseMove{X: 4, Y: 9},
		MouseDown{Button: MouseLeft},
		MouseUp{Button: MouseLeft},
		Wheel{DY: 1},
	}
	for _, ev := range inputs {
		_, ok := ev.(InputEvent)
		assert.True(t, ok, "%T should be an input event", ev)
	}

	for _, ev := range []Event{Tick{}, Closed{}} {
		_, ok := ev.(InputEvent)
		assert.False(t, ok, "%T should not be an input event", ev)
	}
}

func TestKeyFromRune(t *testing.T) {
	assert.Equal(t, KeyZ, KeyFromRune('z'))
	assert.Equal(t, KeyZ, KeyFromRune('Z'))
	assert.Equal(t, Key7, KeyFromRune('7'))
	assert.Equal(t, KeySpace, KeyFromRune(' '))
	assert.Equal(t, KeyUnknown, KeyFromRune('!'))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "left", KeyLeft.String())
	assert.Equal(t, "X", KeyX.String())
	assert.Equal(t, "4", Key4.String())
	assert.Equal(t, "f6", KeyF6.String())
	assert.Equal(t, "space", KeySpace.String())
}

func TestMouseButtonString(t *testing.T) {
	assert.Equal(t, "left", MouseLeft.String())
	assert.Equal(t, "middle", MouseMiddle.String())
	assert.Equal(t, "unknown", MouseButton(99).String())
}
