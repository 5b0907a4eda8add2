package console

import (
	"github.com/go-pix8/pix8/pkg/assets"
	"github.com/go-pix8/pix8/pkg/graphics"
	"github.com/go-pix8/pix8/pkg/theme"
)

// Screen dimensions. The console has a fixed 128x128 indexed-color screen.
const (
	ScreenWidth  = 128
	ScreenHeight = 128
	ScreenPixels = ScreenWidth * ScreenHeight
)

// Graphics is the console's draw surface: a 128x128 buffer of 4-bit color
// indices plus the draw state that all operations honor (camera offset,
// clip rectangle, draw palette, transparency).
//
// Coordinates follow the console convention: origin top-left, x right,
// y down. Every operation except Cls applies the camera offset and clips
// to the clip rectangle; out-of-bounds pixels are silently dropped.
//
// Graphics methods never fail and never allocate per call. The surface is
// not safe for concurrent use; the frame driver guarantees draw passes
// never overlap input handling or presentation.
type Graphics struct {
	pix []uint8

	drawPal     [theme.Colors]uint8
	screenPal   [theme.Colors]uint8
	transparent uint16
	camera      graphics.Point
	clip        graphics.Rect

	sheet   *assets.SpriteSheet
	tiles   *assets.Map
	flags   *assets.Flags
	palette *theme.Palette
}

// defaultTransparency marks color 0 transparent for sprite drawing.
const defaultTransparency uint16 = 1 << 0

func newGraphics(res *assets.Resources, pal *theme.Palette) *Graphics {
	g := &Graphics{
		pix:     make([]uint8, ScreenPixels),
		palette: pal,
	}
	g.attach(res)
	g.PalReset()
	g.ClipReset()
	return g
}

// attach points the surface at a resource bundle's sheet, map and flags.
func (g *Graphics) attach(res *assets.Resources) {
	g.sheet = res.SpriteSheet
	g.tiles = res.Map
	g.flags = res.Flags
}

// Cls clears the entire screen to color c. Camera, clip and the draw
// palette do not apply.
func (g *Graphics) Cls(c uint8) {
	c &= 0x0F
	for i := range g.pix {
		g.pix[i] = c
	}
}

// put writes one pixel in screen space (camera already applied), mapping
// through the draw palette and honoring the clip rectangle.
func (g *Graphics) put(x, y int, c uint8) {
	if !g.clip.ContainsXY(x, y) {
		return
	}
	g.pix[y*ScreenWidth+x] = g.drawPal[c&0x0F]
}

// Pset sets the pixel at (x, y) to color c.
func (g *Graphics) Pset(x, y int, c uint8) {
	g.put(x-g.camera.X, y-g.camera.Y, c)
}

// Pget returns the color of the pixel at (x, y), or 0 off screen.
func (g *Graphics) Pget(x, y int) uint8 {
	x -= g.camera.X
	y -= g.camera.Y
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return 0
	}
	return g.pix[y*ScreenWidth+x]
}

// Line draws a line from (x0, y0) to (x1, y1) in color c.
func (g *Graphics) Line(x0, y0, x1, y1 int, c uint8) {
	x0 -= g.camera.X
	y0 -= g.camera.Y
	x1 -= g.camera.X
	y1 -= g.camera.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.put(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the outline of the rectangle with corners (x0, y0) and
// (x1, y1) in color c.
func (g *Graphics) Rect(x0, y0, x1, y1 int, c uint8) {
	g.Line(x0, y0, x1, y0, c)
	g.Line(x0, y1, x1, y1, c)
	g.Line(x0, y0, x0, y1, c)
	g.Line(x1, y0, x1, y1, c)
}

// RectFill fills the rectangle with corners (x0, y0) and (x1, y1) in
// color c.
func (g *Graphics) RectFill(x0, y0, x1, y1 int, c uint8) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.put(x-g.camera.X, y-g.camera.Y, c)
		}
	}
}

// Circ draws the outline of a circle centered at (cx, cy) with radius r.
func (g *Graphics) Circ(cx, cy, r int, c uint8) {
	g.circle(cx, cy, r, c, false)
}

// CircFill fills a circle centered at (cx, cy) with radius r.
func (g *Graphics) CircFill(cx, cy, r int, c uint8) {
	g.circle(cx, cy, r, c, true)
}

// circle rasterizes with the midpoint algorithm, plotting octants, or
// filling spans between mirrored octant points.
func (g *Graphics) circle(cx, cy, r int, c uint8, fill bool) {
	if r < 0 {
		return
	}
	cx -= g.camera.X
	cy -= g.camera.Y
	x, y := r, 0
	err := 1 - r
	for x >= y {
		if fill {
			g.hspan(cx-x, cx+x, cy+y, c)
			g.hspan(cx-x, cx+x, cy-y, c)
			g.hspan(cx-y, cx+y, cy+x, c)
			g.hspan(cx-y, cx+y, cy-x, c)
		} else {
			g.put(cx+x, cy+y, c)
			g.put(cx-x, cy+y, c)
			g.put(cx+x, cy-y, c)
			g.put(cx-x, cy-y, c)
			g.put(cx+y, cy+x, c)
			g.put(cx-y, cy+x, c)
			g.put(cx+y, cy-x, c)
			g.put(cx-y, cy-x, c)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// hspan fills the horizontal run [x0, x1] at y (screen space).
func (g *Graphics) hspan(x0, x1, y int, c uint8) {
	for x := x0; x <= x1; x++ {
		g.put(x, y, c)
	}
}

// Spr draws sprite n with its top-left corner at (x, y). Transparent
// colors are skipped.
func (g *Graphics) Spr(n, x, y int) {
	g.SprFlip(n, x, y, false, false)
}

// SprFlip draws sprite n at (x, y), optionally mirrored horizontally
// and/or vertically.
func (g *Graphics) SprFlip(n, x, y int, flipX, flipY bool) {
	sx, sy := assets.SpriteOrigin(n)
	g.blit(sx, sy, assets.SpriteSize, assets.SpriteSize, x, y, flipX, flipY)
}

// Sspr copies the sheet rectangle (sx, sy, sw, sh) to the screen rectangle
// (dx, dy, dw, dh), scaling with nearest-neighbor sampling and applying
// the flip flags.
func (g *Graphics) Sspr(sx, sy, sw, sh, dx, dy, dw, dh int, flipX, flipY bool) {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return
	}
	dx -= g.camera.X
	dy -= g.camera.Y
	for py := 0; py < dh; py++ {
		srcY := py * sh / dh
		if flipY {
			srcY = sh - 1 - srcY
		}
		for px := 0; px < dw; px++ {
			srcX := px * sw / dw
			if flipX {
				srcX = sw - 1 - srcX
			}
			c := g.sheet.Get(sx+srcX, sy+srcY)
			if g.isTransparent(c) {
				continue
			}
			g.put(dx+px, dy+py, c)
		}
	}
}

// blit copies an unscaled sheet rectangle to (dx, dy) in draw space.
func (g *Graphics) blit(sx, sy, w, h, dx, dy int, flipX, flipY bool) {
	dx -= g.camera.X
	dy -= g.camera.Y
	for py := 0; py < h; py++ {
		srcY := py
		if flipY {
			srcY = h - 1 - py
		}
		for px := 0; px < w; px++ {
			srcX := px
			if flipX {
				srcX = w - 1 - px
			}
			c := g.sheet.Get(sx+srcX, sy+srcY)
			if g.isTransparent(c) {
				continue
			}
			g.put(dx+px, dy+py, c)
		}
	}
}

// Map draws a block of map cells. (cellX, cellY) selects the top-left
// cell, (sx, sy) the screen position, and cellW x cellH the block size in
// cells. Cells holding sprite 0 are skipped.
func (g *Graphics) Map(cellX, cellY, sx, sy, cellW, cellH int) {
	g.MapLayer(cellX, cellY, sx, sy, cellW, cellH, 0)
}

// MapLayer is Map restricted to cells whose sprite carries every flag bit
// in mask. A zero mask draws all non-empty cells.
func (g *Graphics) MapLayer(cellX, cellY, sx, sy, cellW, cellH int, mask uint8) {
	for cy := 0; cy < cellH; cy++ {
		for cx := 0; cx < cellW; cx++ {
			sprite := g.tiles.Get(cellX+cx, cellY+cy)
			if sprite == 0 {
				continue
			}
			if mask != 0 && g.flags.Get(int(sprite))&mask != mask {
				continue
			}
			ox, oy := assets.SpriteOrigin(int(sprite))
			g.blit(ox, oy, assets.SpriteSize, assets.SpriteSize,
				sx+cx*assets.SpriteSize, sy+cy*assets.SpriteSize, false, false)
		}
	}
}

// Print draws text at (x, y) in color c using the built-in font.
// Newlines return to x and advance by LineHeight.
func (g *Graphics) Print(s string, x, y int, c uint8) {
	cx, cy := x, y
	for _, r := range s {
		if r == '\n' {
			cx = x
			cy += LineHeight
			continue
		}
		mask := glyphFor(r)
		for row := 0; row < glyphHeight; row++ {
			for col := 0; col < glyphWidth; col++ {
				if mask&(1<<(row*glyphWidth+col)) != 0 {
					g.Pset(cx+col, cy+row, c)
				}
			}
		}
		cx += CharWidth
	}
}

// Camera sets the camera offset so that subsequent draws are shifted by
// (-x, -y). It returns the previous offset.
func (g *Graphics) Camera(x, y int) graphics.Point {
	prev := g.camera
	g.camera = graphics.Pt(x, y)
	return prev
}

// Clip restricts drawing to the given screen rectangle, clamped to the
// screen. It returns the previous clip rectangle.
func (g *Graphics) Clip(x, y, w, h int) graphics.Rect {
	prev := g.clip
	g.clip = graphics.NewRect(x, y, w, h).
		Intersect(graphics.NewRect(0, 0, ScreenWidth, ScreenHeight))
	return prev
}

// ClipReset restores the clip rectangle to the full screen and returns
// the previous clip rectangle.
func (g *Graphics) ClipReset() graphics.Rect {
	prev := g.clip
	g.clip = graphics.NewRect(0, 0, ScreenWidth, ScreenHeight)
	return prev
}

// Pal remaps draw color from to color to: subsequent draws requesting
// from produce to.
func (g *Graphics) Pal(from, to uint8) {
	g.drawPal[from&0x0F] = to & 0x0F
}

// PalDisplay remaps a color at presentation time without touching pixel
// data already drawn.
func (g *Graphics) PalDisplay(from, to uint8) {
	g.screenPal[from&0x0F] = to & 0x0F
}

// PalReset restores both palettes to identity and transparency to its
// default (only color 0 transparent).
func (g *Graphics) PalReset() {
	for i := range g.drawPal {
		g.drawPal[i] = uint8(i)
		g.screenPal[i] = uint8(i)
	}
	g.PaltReset()
}

// Palt marks color c as transparent (or opaque) for sprite drawing.
func (g *Graphics) Palt(c uint8, transparent bool) {
	if transparent {
		g.transparent |= 1 << (c & 0x0F)
	} else {
		g.transparent &^= 1 << (c & 0x0F)
	}
}

// PaltReset restores default transparency: only color 0 transparent.
func (g *Graphics) PaltReset() {
	g.transparent = defaultTransparency
}

func (g *Graphics) isTransparent(c uint8) bool {
	return g.transparent&(1<<(c&0x0F)) != 0
}

// Snapshot copies the current color indices into dst, growing it if
// needed, and returns it. Used by the GIF recorder and tests.
func (g *Graphics) Snapshot(dst []uint8) []uint8 {
	if cap(dst) < ScreenPixels {
		dst = make([]uint8, ScreenPixels)
	}
	dst = dst[:ScreenPixels]
	copy(dst, g.pix)
	return dst
}

// RGB composes the presented frame into dst as 8-bit-per-channel RGB,
// mapping indices through the display palette, growing dst if needed.
// The returned slice is valid until the next call.
func (g *Graphics) RGB(dst []byte) []byte {
	if cap(dst) < ScreenPixels*3 {
		dst = make([]byte, ScreenPixels*3)
	}
	dst = dst[:ScreenPixels*3]

	// The composition palette folds the screen palette into RGB up front
	// so the pixel loop is a table lookup.
	var lut [theme.Colors]graphics.Color
	for i := range lut {
		lut[i] = g.palette.RGB(g.screenPal[i])
	}
	for i, c := range g.pix {
		col := lut[c&0x0F]
		dst[i*3+0] = col.R()
		dst[i*3+1] = col.G()
		dst[i*3+2] = col.B()
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
