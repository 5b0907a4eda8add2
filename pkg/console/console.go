package console

import (
	"github.com/go-pix8/pix8/pkg/assets"
	"github.com/go-pix8/pix8/pkg/event"
	"github.com/go-pix8/pix8/pkg/graphics"
	"github.com/go-pix8/pix8/pkg/input"
	"github.com/go-pix8/pix8/pkg/theme"
)

// Console is the complete machine state handed to applications: the draw
// surface plus input, cartridge assets, and the per-tick event buffer.
//
// A Console belongs to the frame driver's goroutine. Update and draw
// passes receive it in sequence and never concurrently.
type Console struct {
	*Graphics

	res *assets.Resources
	pal *theme.Palette

	cur, prev input.Snapshot
	events    []event.Event
	frame     uint64
}

// New builds a console around the given cartridge resources and display
// palette. Nil arguments select blank resources and the stock palette.
func New(res *assets.Resources, pal *theme.Palette) *Console {
	if res == nil {
		res = assets.Default()
	}
	if pal == nil {
		pal = theme.Default()
	}
	return &Console{
		Graphics: newGraphics(res, pal),
		res:      res,
		pal:      pal,
	}
}

// Btn reports whether button b is held this tick.
func (c *Console) Btn(b input.Button) bool {
	return c.cur.Down(b)
}

// Btnp reports whether button b was pressed this tick: held now and not
// held on the previous tick.
func (c *Console) Btnp(b input.Button) bool {
	return c.cur.Down(b) && !c.prev.Down(b)
}

// Mouse returns the pointer position in console pixels.
func (c *Console) Mouse() graphics.Point {
	return c.cur.Mouse
}

// MouseWheel returns the scroll distance accumulated during the last
// inter-tick window. Positive values scroll up.
func (c *Console) MouseWheel() int {
	return c.cur.Wheel
}

// Events returns the raw events received since the previous tick, in
// arrival order, ending with the tick itself. The slice is reused across
// ticks; callers must not retain it.
func (c *Console) Events() []event.Event {
	return c.events
}

// Frame returns the number of completed ticks since the console started.
func (c *Console) Frame() uint64 {
	return c.frame
}

// Fget returns the flag byte of sprite n.
func (c *Console) Fget(n int) uint8 {
	return c.res.Flags.Get(n)
}

// FgetBit reports whether flag bit (0-7) is set on sprite n.
func (c *Console) FgetBit(n, bit int) bool {
	return c.res.Flags.Bit(n, bit)
}

// Fset writes the flag byte of sprite n.
func (c *Console) Fset(n int, v uint8) {
	c.res.Flags.Set(n, v)
}

// FsetBit sets or clears flag bit (0-7) on sprite n.
func (c *Console) FsetBit(n, bit int, on bool) {
	c.res.Flags.SetBit(n, bit, on)
}

// Mget returns the sprite number at map cell (x, y).
func (c *Console) Mget(x, y int) uint8 {
	return c.res.Map.Get(x, y)
}

// Mset writes the sprite number at map cell (x, y).
func (c *Console) Mset(x, y int, sprite uint8) {
	c.res.Map.Set(x, y, sprite)
}

// Resources returns the cartridge assets.
func (c *Console) Resources() *assets.Resources {
	return c.res
}

// SetResources swaps in a new resource bundle. The frame driver calls
// this between ticks when live reload is enabled.
func (c *Console) SetResources(res *assets.Resources) {
	if res == nil {
		return
	}
	c.res = res
	c.Graphics.attach(res)
}

// Palette returns the display palette.
func (c *Console) Palette() *theme.Palette {
	return c.pal
}

// BeginTick installs the input snapshot and event buffer for the next
// update pass and advances the frame counter. Only the frame driver and
// the test harness call this.
func (c *Console) BeginTick(snap input.Snapshot, events []event.Event) {
	c.prev = c.cur
	c.cur = snap
	c.events = append(c.events[:0], events...)
	c.frame++
}
