package console

// The built-in font: 3x5 glyphs on a 4x6 advance grid. Glyphs are declared
// as row patterns and compiled to bitmasks at package init. Lowercase
// letters render with the uppercase glyph.
const (
	glyphWidth  = 3
	glyphHeight = 5

	// CharWidth is the horizontal advance of Print.
	CharWidth = 4
	// LineHeight is the vertical advance of Print at a newline.
	LineHeight = 6
)

var glyphPatterns = map[rune][glyphHeight]string{
	'!':  {" # ", " # ", " # ", "   ", " # "},
	'"':  {"# #", "# #", "   ", "   ", "   "},
	'#':  {"# #", "###", "# #", "###", "# #"},
	'$':  {"###", "## ", "###", " ##", "###"},
	'%':  {"# #", "  #", " # ", "#  ", "# #"},
	'&':  {"## ", "## ", "###", "# #", "###"},
	'\'': {" # ", " # ", "   ", "   ", "   "},
	'(':  {" # ", "#  ", "#  ", "#  ", " # "},
	')':  {" # ", "  #", "  #", "  #", " # "},
	'*':  {"# #", " # ", "###", " # ", "# #"},
	'+':  {"   ", " # ", "###", " # ", "   "},
	',':  {"   ", "   ", "   ", " # ", "#  "},
	'-':  {"   ", "   ", "###", "   ", "   "},
	'.':  {"   ", "   ", "   ", "   ", " # "},
	'/':  {"  #", "  #", " # ", "#  ", "#  "},
	'0':  {"###", "# #", "# #", "# #", "###"},
	'1':  {" # ", "## ", " # ", " # ", "###"},
	'2':  {"###", "  #", "###", "#  ", "###"},
	'3':  {"###", "  #", " ##", "  #", "###"},
	'4':  {"# #", "# #", "###", "  #", "  #"},
	'5':  {"###", "#  ", "###", "  #", "###"},
	'6':  {" ##", "#  ", "###", "# #", "###"},
	'7':  {"###", "  #", "  #", "  #", "  #"},
	'8':  {"###", "# #", "###", "# #", "###"},
	'9':  {"###", "# #", "###", "  #", "###"},
	':':  {"   ", " # ", "   ", " # ", "   "},
	';':  {"   ", " # ", "   ", " # ", "#  "},
	'<':  {"  #", " # ", "#  ", " # ", "  #"},
	'=':  {"   ", "###", "   ", "###", "   "},
	'>':  {"#  ", " # ", "  #", " # ", "#  "},
	'?':  {"###", "  #", " ##", "   ", " # "},
	'@':  {" ##", "# #", "# #", "#  ", " ##"},
	'A':  {"###", "# #", "###", "# #", "# #"},
	'B':  {"## ", "# #", "## ", "# #", "## "},
	'C':  {"###", "#  ", "#  ", "#  ", "###"},
	'D':  {"## ", "# #", "# #", "# #", "## "},
	'E':  {"###", "#  ", "###", "#  ", "###"},
	'F':  {"###", "#  ", "###", "#  ", "#  "},
	'G':  {"###", "#  ", "# #", "# #", "###"},
	'H':  {"# #", "# #", "###", "# #", "# #"},
	'I':  {"###", " # ", " # ", " # ", "###"},
	'J':  {"  #", "  #", "  #", "# #", "###"},
	'K':  {"# #", "# #", "## ", "# #", "# #"},
	'L':  {"#  ", "#  ", "#  ", "#  ", "###"},
	'M':  {"# #", "###", "# #", "# #", "# #"},
	'N':  {"## ", "# #", "# #", "# #", "# #"},
	'O':  {"###", "# #", "# #", "# #", "###"},
	'P':  {"###", "# #", "###", "#  ", "#  "},
	'Q':  {"###", "# #", "# #", "###", "  #"},
	'R':  {"###", "# #", "## ", "# #", "# #"},
	'S':  {"###", "#  ", "###", "  #", "###"},
	'T':  {"###", " # ", " # ", " # ", " # "},
	'U':  {"# #", "# #", "# #", "# #", "###"},
	'V':  {"# #", "# #", "# #", "# #", " # "},
	'W':  {"# #", "# #", "# #", "###", "# #"},
	'X':  {"# #", "# #", " # ", "# #", "# #"},
	'Y':  {"# #", "# #", "###", " # ", " # "},
	'Z':  {"###", "  #", " # ", "#  ", "###"},
	'[':  {"## ", "#  ", "#  ", "#  ", "## "},
	'\\': {"#  ", "#  ", " # ", "  #", "  #"},
	']':  {" ##", "  #", "  #", "  #", " ##"},
	'^':  {" # ", "# #", "   ", "   ", "   "},
	'_':  {"   ", "   ", "   ", "   ", "###"},
	'`':  {"#  ", " # ", "   ", "   ", "   "},
	'{':  {" ##", " # ", "## ", " # ", " ##"},
	'|':  {" # ", " # ", " # ", " # ", " # "},
	'}':  {"## ", " # ", " ##", " # ", "## "},
	'~':  {"   ", " ##", "## ", "   ", "   "},
}

// font holds one bitmask per printable ASCII rune; bit (row*3 + col) set
// means the pixel at (col, row) is lit.
var font [95]uint16

func init() {
	for r, rows := range glyphPatterns {
		var mask uint16
		for y, row := range rows {
			for x := 0; x < glyphWidth && x < len(row); x++ {
				if row[x] != ' ' {
					mask |= 1 << (y*glyphWidth + x)
				}
			}
		}
		font[r-' '] = mask
	}
}

// glyphFor returns the bitmask for r, folding lowercase to uppercase.
// Runes outside the font render as blank.
func glyphFor(r rune) uint16 {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < ' ' || r > '~' {
		return 0
	}
	return font[r-' ']
}
