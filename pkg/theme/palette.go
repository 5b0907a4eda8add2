// Package theme defines the console's 16-color display palette and the
// optional palette.toml override mechanism.
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-pix8/pix8/pkg/graphics"
)

// Colors is the number of entries in a console palette.
const Colors = 16

// Named palette slots. The values are color indices, not RGB colors.
const (
	Black uint8 = iota
	DarkBlue
	DarkPurple
	DarkGreen
	Brown
	DarkGray
	LightGray
	White
	Red
	Orange
	Yellow
	Green
	Blue
	Indigo
	Pink
	Peach
)

// defaultColors is the stock palette shipped with the console.
var defaultColors = [Colors]graphics.Color{
	graphics.RGB(0x00, 0x00, 0x00), // black
	graphics.RGB(0x1D, 0x2B, 0x53), // dark blue
	graphics.RGB(0x7E, 0x25, 0x53), // dark purple
	graphics.RGB(0x00, 0x87, 0x51), // dark green
	graphics.RGB(0xAB, 0x52, 0x36), // brown
	graphics.RGB(0x5F, 0x57, 0x4F), // dark gray
	graphics.RGB(0xC2, 0xC3, 0xC7), // light gray
	graphics.RGB(0xFF, 0xF1, 0xE8), // white
	graphics.RGB(0xFF, 0x00, 0x4D), // red
	graphics.RGB(0xFF, 0xA3, 0x00), // orange
	graphics.RGB(0xFF, 0xEC, 0x27), // yellow
	graphics.RGB(0x00, 0xE4, 0x36), // green
	graphics.RGB(0x29, 0xAD, 0xFF), // blue
	graphics.RGB(0x83, 0x76, 0x9C), // indigo
	graphics.RGB(0xFF, 0x77, 0xA8), // pink
	graphics.RGB(0xFF, 0xCC, 0xAA), // peach
}

// Palette maps the 16 color indices to display colors.
// The zero value is unusable; construct with Default or Load.
type Palette struct {
	colors [Colors]graphics.Color
}

// Default returns the stock palette.
func Default() *Palette {
	return &Palette{colors: defaultColors}
}

// RGB returns the display color for index. Indices wrap at 16.
func (p *Palette) RGB(index uint8) graphics.Color {
	return p.colors[index&0x0F]
}

// Set replaces the display color for index. Indices wrap at 16.
func (p *Palette) Set(index uint8, c graphics.Color) {
	p.colors[index&0x0F] = c
}

// paletteFile is the on-disk palette.toml shape.
type paletteFile struct {
	Colors []string `toml:"colors"`
}

// Load reads a palette override from a TOML file. The file must define a
// colors array of exactly 16 hex strings:
//
//	colors = ["#000000", "#1D2B53", ...]
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}
	return Parse(data)
}

// Parse decodes palette TOML data.
func Parse(data []byte) (*Palette, error) {
	var file paletteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	if len(file.Colors) != Colors {
		return nil, fmt.Errorf("parse palette: want %d colors, got %d", Colors, len(file.Colors))
	}
	p := &Palette{}
	for i, hex := range file.Colors {
		c, err := graphics.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("parse palette color %d: %w", i, err)
		}
		p.colors[i] = c
	}
	return p, nil
}

// Marshal encodes the palette as TOML suitable for palette.toml.
func (p *Palette) Marshal() ([]byte, error) {
	file := paletteFile{Colors: make([]string, Colors)}
	for i, c := range p.colors {
		file.Colors[i] = c.Hex()
	}
	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("marshal palette: %w", err)
	}
	return data, nil
}
