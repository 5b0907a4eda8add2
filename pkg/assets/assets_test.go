package assets

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pix8/pix8/pkg/errors"
)

func TestMapRoundTrip(t *testing.T) {
	m := NewMap()
	m.Set(0, 0, 0x11)
	m.Set(127, 63, 0xFE)
	m.Set(31, 17, 0x09)

	parsed, err := ParseMap(m.Serialize())
	require.NoError(t, err)
	assert.Equal(t, uint8(0x11), parsed.Get(0, 0))
	assert.Equal(t, uint8(0xFE), parsed.Get(127, 63))
	assert.Equal(t, uint8(0x09), parsed.Get(31, 17))
}

func TestMapSerializeLayout(t *testing.T) {
	text := string(NewMap().Serialize())
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, MapHeight)
	assert.Equal(t, strings.Repeat("00 ", MapWidth-1)+"00", lines[0])
}

func TestMapDecodeTolerant(t *testing.T) {
	// Any non-hex byte acts as a separator.
	m := NewMap()
	m.Set(1, 0, 0xAB)
	mangled := strings.ReplaceAll(string(m.Serialize()), " ", ",\t")

	parsed, err := ParseMap([]byte(mangled))
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), parsed.Get(1, 0))
}

func TestMapDecodeErrors(t *testing.T) {
	_, err := ParseMap([]byte("00 11 22"))
	require.Error(t, err)
	var de *errors.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, MapFile, de.File)

	// A trailing lone nibble is rejected, not silently dropped.
	data := NewMap().Serialize()
	_, err = ParseMap(append(data, 'F'))
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Got, "trailing half pair")
}

func TestMapBounds(t *testing.T) {
	m := NewMap()
	m.Set(-1, 0, 7)
	m.Set(MapWidth, 0, 7)
	m.Set(0, MapHeight, 7)
	assert.Equal(t, uint8(0), m.Get(-1, 0))
	assert.Equal(t, uint8(0), m.Get(MapWidth, 0))
	assert.Equal(t, uint8(0), m.Get(0, -5))
}

func TestSpriteSheetRoundTrip(t *testing.T) {
	s := NewSpriteSheet()
	s.Set(0, 0, 7)
	s.Set(127, 127, 15)
	s.Set(8, 3, 0x1F) // wraps to 15

	parsed, err := ParseSpriteSheet(s.Serialize())
	require.NoError(t, err)
	assert.Equal(t, uint8(7), parsed.Get(0, 0))
	assert.Equal(t, uint8(15), parsed.Get(127, 127))
	assert.Equal(t, uint8(15), parsed.Get(8, 3))
}

func TestSpriteSheetSerializeLayout(t *testing.T) {
	lines := strings.Split(strings.TrimRight(string(NewSpriteSheet().Serialize()), "\n"), "\n")
	require.Len(t, lines, SheetHeight)
	assert.Equal(t, strings.Repeat("0", SheetWidth), lines[0])
}

func TestSpriteOrigin(t *testing.T) {
	x, y := SpriteOrigin(0)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})

	x, y = SpriteOrigin(17)
	assert.Equal(t, [2]int{8, 8}, [2]int{x, y})

	x, y = SpriteOrigin(255)
	assert.Equal(t, [2]int{120, 120}, [2]int{x, y})

	// Sprite numbers wrap at 256.
	x, y = SpriteOrigin(256)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
}

func TestFlags(t *testing.T) {
	f := NewFlags()
	f.Set(3, 0b1010_0001)
	assert.Equal(t, uint8(0xA1), f.Get(3))
	assert.True(t, f.Bit(3, 0))
	assert.False(t, f.Bit(3, 1))
	assert.True(t, f.Bit(3, 7))

	f.SetBit(3, 1, true)
	assert.True(t, f.Bit(3, 1))
	f.SetBit(3, 0, false)
	assert.False(t, f.Bit(3, 0))

	assert.Equal(t, uint8(0), f.Get(300))
	f.Set(-1, 9)
	assert.False(t, f.Bit(-1, 0))

	parsed, err := ParseFlags(f.Serialize())
	require.NoError(t, err)
	assert.Equal(t, f.Get(3), parsed.Get(3))
}

func TestLoadMissingFilesGivesDefaults(t *testing.T) {
	res, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint8(0), res.Map.Get(0, 0))
	assert.Equal(t, uint8(0), res.SpriteSheet.Get(0, 0))
	assert.Equal(t, uint8(0), res.Flags.Get(0))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	res := Default()
	res.Map.Set(2, 2, 0x42)
	res.SpriteSheet.Set(9, 1, 12)
	res.Flags.SetBit(7, 4, true)
	require.NoError(t, res.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), loaded.Map.Get(2, 2))
	assert.Equal(t, uint8(12), loaded.SpriteSheet.Get(9, 1))
	assert.True(t, loaded.Flags.Bit(7, 4))
	assert.Equal(t, dir, loaded.Dir)

	// Save with no directory re-uses the load directory.
	loaded.Map.Set(5, 5, 0x77)
	require.NoError(t, loaded.Save(""))
	again, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x77), again.Map.Get(5, 5))
}

func TestSaveWithoutDirFails(t *testing.T) {
	assert.Error(t, Default().Save(""))
}

func TestLoadFS(t *testing.T) {
	m := NewMap()
	m.Set(10, 10, 0x33)

	fsys := fstest.MapFS{
		"assets/" + MapFile: &fstest.MapFile{Data: m.Serialize()},
	}
	res, err := LoadFS(fsys, "assets")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x33), res.Map.Get(10, 10))
	// Absent files fall back to blanks.
	assert.Equal(t, uint8(0), res.SpriteSheet.Get(0, 0))

	root := fstest.MapFS{MapFile: &fstest.MapFile{Data: m.Serialize()}}
	res, err = LoadFS(root, ".")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x33), res.Map.Get(10, 10))
}

func TestLoadCorruptFileFails(t *testing.T) {
	fsys := fstest.MapFS{
		SpriteSheetFile: &fstest.MapFile{Data: []byte("0123")},
	}
	_, err := LoadFS(fsys, ".")
	require.Error(t, err)
	var de *errors.DecodeError
	assert.ErrorAs(t, err, &de)
}
