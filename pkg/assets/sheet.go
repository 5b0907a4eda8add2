package assets

// Sprite sheet dimensions. The sheet is a 128x128 grid of 4-bit pixels
// holding 256 sprites of 8x8 pixels, 16 per row.
const (
	SheetWidth    = 128
	SheetHeight   = 128
	SpriteSize    = 8
	SpritesPerRow = 16
	SpriteCount   = 256

	// SpriteSheetFile is the cartridge file name for the sprite sheet.
	SpriteSheetFile = "sprite_sheet.txt"
)

// SpriteSheet is the console's 128x128 sprite pixel store.
type SpriteSheet struct {
	pix []uint8
}

// NewSpriteSheet returns a blank (all color 0) sprite sheet.
func NewSpriteSheet() *SpriteSheet {
	return &SpriteSheet{pix: make([]uint8, SheetWidth*SheetHeight)}
}

// Get returns the color index at sheet pixel (x, y), or 0 when out of range.
func (s *SpriteSheet) Get(x, y int) uint8 {
	if x < 0 || x >= SheetWidth || y < 0 || y >= SheetHeight {
		return 0
	}
	return s.pix[y*SheetWidth+x]
}

// Set writes the color index at sheet pixel (x, y). Out-of-range writes
// are ignored; colors wrap at 16.
func (s *SpriteSheet) Set(x, y int, c uint8) {
	if x < 0 || x >= SheetWidth || y < 0 || y >= SheetHeight {
		return
	}
	s.pix[y*SheetWidth+x] = c & 0x0F
}

// SpriteOrigin returns the top-left sheet pixel of sprite n.
func SpriteOrigin(n int) (x, y int) {
	n &= SpriteCount - 1
	return (n % SpritesPerRow) * SpriteSize, (n / SpritesPerRow) * SpriteSize
}

// Serialize encodes the sheet as 128 lines of 128 hex digits.
func (s *SpriteSheet) Serialize() []byte {
	return encodeHexNibbles(s.pix, SheetWidth)
}

// ParseSpriteSheet decodes sheet text produced by Serialize. Non-hex bytes
// are ignored, so any whitespace layout decodes.
func ParseSpriteSheet(data []byte) (*SpriteSheet, error) {
	pix, err := decodeHexNibbles(data, SheetWidth*SheetHeight, SpriteSheetFile)
	if err != nil {
		return nil, err
	}
	return &SpriteSheet{pix: pix}, nil
}
