package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := Default()

	assert.Equal(t, "#000000", p.RGB(Black).Hex())
	assert.Equal(t, "#FF004D", p.RGB(Red).Hex())
	assert.Equal(t, "#FFCCAA", p.RGB(Peach).Hex())

	// Indices wrap at 16.
	assert.Equal(t, p.RGB(Black), p.RGB(16))
	assert.Equal(t, p.RGB(DarkBlue), p.RGB(17))
}

func TestPaletteSet(t *testing.T) {
	p := Default()
	p.Set(Red, 0xFF123456)
	assert.Equal(t, "#123456", p.RGB(Red).Hex())
}

func TestParsePalette(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	p, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().RGB(Indigo), p.RGB(Indigo))
}

func TestParsePaletteWrongCount(t *testing.T) {
	_, err := Parse([]byte(`colors = ["#000000", "#FFFFFF"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 16 colors")
}

func TestParsePaletteBadHex(t *testing.T) {
	bad := `colors = ["#000000", "#1D2B53", "#7E2553", "#008751", "#AB5236", "#5F574F",
		"#C2C3C7", "#FFF1E8", "#FF004D", "#FFA300", "#FFEC27", "#00E436",
		"#29ADFF", "#83769C", "#FF77A8", "not-a-color"]`
	_, err := Parse([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color 15")
}

func TestLoadPaletteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.toml")

	data, err := Default().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().RGB(Green), p.RGB(Green))

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
