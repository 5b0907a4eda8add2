package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorComponents(t *testing.T) {
	c := RGB(0x1D, 0x2B, 0x53)
	assert.Equal(t, uint8(0x1D), c.R())
	assert.Equal(t, uint8(0x2B), c.G())
	assert.Equal(t, uint8(0x53), c.B())
	assert.Equal(t, uint8(0xFF), c.A())
	assert.Equal(t, "#1D2B53", c.Hex())
}

func TestColorImplementsImageColor(t *testing.T) {
	r, g, b, a := RGB(0xFF, 0x00, 0x80).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0x0000), g)
	assert.Equal(t, uint32(0x8080), b)
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF004D")
	require.NoError(t, err)
	assert.Equal(t, RGB(0xFF, 0x00, 0x4D), c)

	c, err = ParseColor("29adff")
	require.NoError(t, err)
	assert.Equal(t, RGB(0x29, 0xAD, 0xFF), c)

	_, err = ParseColor("#FFF")
	assert.Error(t, err)
	_, err = ParseColor("#GG0000")
	assert.Error(t, err)
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 8, 8)

	assert.True(t, r.ContainsXY(10, 20))
	assert.True(t, r.ContainsXY(17, 27))
	assert.False(t, r.ContainsXY(18, 20))
	assert.False(t, r.ContainsXY(10, 28))
	assert.False(t, r.ContainsXY(9, 20))

	assert.True(t, Pt(12, 22).In(r))
}

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersect(b))

	disjoint := NewRect(20, 20, 4, 4)
	assert.True(t, a.Intersect(disjoint).Empty())

	assert.True(t, Rect{}.Empty())
	assert.False(t, a.Empty())
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4).Add(Pt(1, -2))
	assert.Equal(t, Pt(4, 2), p)
	assert.Equal(t, Pt(1, -2), p.Sub(Pt(3, 4)))
}
