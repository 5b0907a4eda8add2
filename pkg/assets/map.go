package assets

// Map dimensions in sprite cells: 8 screens across, 4 screens down, each
// screen 16x16 cells.
const (
	MapWidth  = 128
	MapHeight = 64

	// MapFile is the cartridge file name for the tile map.
	MapFile = "map.txt"
)

// Map is the console's tile map. Each cell holds a sprite number; sprite 0
// is treated as empty by map drawing.
type Map struct {
	cells []uint8
}

// NewMap returns a blank (all zero) map.
func NewMap() *Map {
	return &Map{cells: make([]uint8, MapWidth*MapHeight)}
}

// Get returns the sprite number at cell (x, y), or 0 when out of range.
func (m *Map) Get(x, y int) uint8 {
	if x < 0 || x >= MapWidth || y < 0 || y >= MapHeight {
		return 0
	}
	return m.cells[y*MapWidth+x]
}

// Set writes the sprite number at cell (x, y). Out-of-range writes are
// ignored.
func (m *Map) Set(x, y int, sprite uint8) {
	if x < 0 || x >= MapWidth || y < 0 || y >= MapHeight {
		return
	}
	m.cells[y*MapWidth+x] = sprite
}

// Serialize encodes the map as 64 lines of 128 space-separated hex pairs.
func (m *Map) Serialize() []byte {
	return encodeHexBytes(m.cells, MapWidth)
}

// ParseMap decodes map text produced by Serialize. Non-hex bytes are
// ignored, so any whitespace layout decodes.
func ParseMap(data []byte) (*Map, error) {
	cells, err := decodeHexBytes(data, MapWidth*MapHeight, MapFile)
	if err != nil {
		return nil, err
	}
	return &Map{cells: cells}, nil
}
