// Package assets holds the console's cartridge data: the sprite sheet, the
// tile map, and per-sprite flags, together with their text codecs and the
// Resources bundle that loads and saves them.
//
// All three assets serialize to plain text hex so cartridges diff cleanly
// under version control. Decoders are tolerant: any non-hex byte is treated
// as a separator, so whitespace layout never matters.
package assets

import (
	"fmt"

	"github.com/go-pix8/pix8/pkg/errors"
)

func hexVal(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

const hexDigits = "0123456789ABCDEF"

// decodeHexBytes reads exactly want byte values written as hex pairs,
// skipping every non-hex byte.
func decodeHexBytes(data []byte, want int, file string) ([]uint8, error) {
	out := make([]uint8, 0, want)
	var hi uint8
	half := false
	for _, b := range data {
		d, ok := hexVal(b)
		if !ok {
			continue
		}
		if !half {
			hi = d
			half = true
		} else {
			out = append(out, hi<<4|d)
			half = false
		}
	}
	if half || len(out) != want {
		got := fmt.Sprintf("%d", len(out))
		if half {
			got += " and a trailing half pair"
		}
		return nil, &errors.DecodeError{
			File:     file,
			Expected: fmt.Sprintf("%d hex byte pairs", want),
			Got:      got,
		}
	}
	return out, nil
}

// decodeHexNibbles reads exactly want 4-bit values written as single hex
// digits, skipping every non-hex byte.
func decodeHexNibbles(data []byte, want int, file string) ([]uint8, error) {
	out := make([]uint8, 0, want)
	for _, b := range data {
		if d, ok := hexVal(b); ok {
			out = append(out, d)
		}
	}
	if len(out) != want {
		return nil, &errors.DecodeError{
			File:     file,
			Expected: fmt.Sprintf("%d hex digits", want),
			Got:      fmt.Sprintf("%d", len(out)),
		}
	}
	return out, nil
}

// encodeHexBytes writes vals as uppercase hex pairs separated by spaces,
// perRow pairs per line.
func encodeHexBytes(vals []uint8, perRow int) []byte {
	out := make([]byte, 0, len(vals)*3)
	for i, v := range vals {
		out = append(out, hexDigits[v>>4], hexDigits[v&0x0F])
		if (i+1)%perRow == 0 {
			out = append(out, '\n')
		} else {
			out = append(out, ' ')
		}
	}
	return out
}

// encodeHexNibbles writes vals as contiguous uppercase hex digits,
// perRow digits per line.
func encodeHexNibbles(vals []uint8, perRow int) []byte {
	out := make([]byte, 0, len(vals)+len(vals)/perRow+1)
	for i, v := range vals {
		out = append(out, hexDigits[v&0x0F])
		if (i+1)%perRow == 0 {
			out = append(out, '\n')
		}
	}
	return out
}
