package event

import "fmt"

// Key identifies a physical key. Letter and digit keys use their ASCII
// uppercase value so translation from rune-reporting backends is direct.
type Key int

const (
	KeyUnknown Key = 0

	Key0 Key = '0'
	Key1 Key = '1'
	Key2 Key = '2'
	Key3 Key = '3'
	Key4 Key = '4'
	Key5 Key = '5'
	Key6 Key = '6'
	Key7 Key = '7'
	Key8 Key = '8'
	Key9 Key = '9'

	KeyA Key = 'A'
	KeyB Key = 'B'
	KeyC Key = 'C'
	KeyD Key = 'D'
	KeyE Key = 'E'
	KeyF Key = 'F'
	KeyG Key = 'G'
	KeyH Key = 'H'
	KeyI Key = 'I'
	KeyJ Key = 'J'
	KeyK Key = 'K'
	KeyL Key = 'L'
	KeyM Key = 'M'
	KeyN Key = 'N'
	KeyO Key = 'O'
	KeyP Key = 'P'
	KeyQ Key = 'Q'
	KeyR Key = 'R'
	KeyS Key = 'S'
	KeyT Key = 'T'
	KeyU Key = 'U'
	KeyV Key = 'V'
	KeyW Key = 'W'
	KeyX Key = 'X'
	KeyY Key = 'Y'
	KeyZ Key = 'Z'

	KeySpace Key = ' '
)

// Non-printable keys start above the ASCII range.
const (
	KeyLeft Key = iota + 0x100
	KeyRight
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyShift
	KeyControl
	KeyAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var specialKeyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyArrowUp:   "up",
	KeyArrowDown: "down",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyShift:     "shift",
	KeyControl:   "control",
	KeyAlt:       "alt",
	KeySpace:     "space",
}

func (k Key) String() string {
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	if (k >= Key0 && k <= Key9) || (k >= KeyA && k <= KeyZ) {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// KeyFromRune maps a printable rune to its Key, folding letters to
// uppercase. It returns KeyUnknown for runes outside the key set.
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z':
		return Key(r)
	case r >= '0' && r <= '9':
		return Key(r)
	case r == ' ':
		return KeySpace
	}
	return KeyUnknown
}
