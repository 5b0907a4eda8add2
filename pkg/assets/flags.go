package assets

// FlagsFile is the cartridge file name for sprite flags.
const FlagsFile = "sprite_flags.txt"

// flagsPerRow is the serialization line width.
const flagsPerRow = 16

// Flags holds one byte of user-defined flags per sprite. Map drawing can
// filter cells by flag mask; games use flags for collision layers and the
// like.
type Flags struct {
	bits []uint8
}

// NewFlags returns an all-zero flag set.
func NewFlags() *Flags {
	return &Flags{bits: make([]uint8, SpriteCount)}
}

// Get returns the flag byte for sprite n, or 0 when out of range.
func (f *Flags) Get(n int) uint8 {
	if n < 0 || n >= SpriteCount {
		return 0
	}
	return f.bits[n]
}

// Set writes the flag byte for sprite n. Out-of-range writes are ignored.
func (f *Flags) Set(n int, v uint8) {
	if n < 0 || n >= SpriteCount {
		return
	}
	f.bits[n] = v
}

// Bit reports whether flag bit (0-7) is set on sprite n.
func (f *Flags) Bit(n, bit int) bool {
	if bit < 0 || bit > 7 {
		return false
	}
	return f.Get(n)&(1<<bit) != 0
}

// SetBit sets or clears flag bit (0-7) on sprite n.
func (f *Flags) SetBit(n, bit int, on bool) {
	if n < 0 || n >= SpriteCount || bit < 0 || bit > 7 {
		return
	}
	if on {
		f.bits[n] |= 1 << bit
	} else {
		f.bits[n] &^= 1 << bit
	}
}

// Serialize encodes the flags as hex pairs, 16 per line.
func (f *Flags) Serialize() []byte {
	return encodeHexBytes(f.bits, flagsPerRow)
}

// ParseFlags decodes flag text produced by Serialize.
func ParseFlags(data []byte) (*Flags, error) {
	bits, err := decodeHexBytes(data, SpriteCount, FlagsFile)
	if err != nil {
		return nil, err
	}
	return &Flags{bits: bits}, nil
}
