//go:build darwin

package keys

// ANSI virtual key codes from Carbon's Events.h (kVK_ANSI_*).
var letterKeys = map[rune]int{
	'a': 0x00, 'b': 0x0B, 'c': 0x08, 'd': 0x02, 'e': 0x0E,
	'f': 0x03, 'g': 0x05, 'h': 0x04, 'i': 0x22, 'j': 0x26,
	'k': 0x28, 'l': 0x25, 'm': 0x2E, 'n': 0x2D, 'o': 0x1F,
	'p': 0x23, 'q': 0x0C, 'r': 0x0F, 's': 0x01, 't': 0x11,
	'u': 0x20, 'v': 0x09, 'w': 0x0D, 'x': 0x07, 'y': 0x10,
	'z': 0x06,
}

var digitKeys = [10]int{0x1D, 0x12, 0x13, 0x14, 0x15, 0x17, 0x16, 0x1A, 0x1C, 0x19}

type keystroke struct {
	code  int
	shift bool
}

var punctKeys = map[rune]keystroke{
	'.': {0x2F, false}, ',': {0x2B, false}, '/': {0x2C, false},
	';': {0x29, false}, '\'': {0x27, false}, '[': {0x21, false},
	']': {0x1E, false}, '-': {0x1B, false}, '=': {0x18, false},
	'\\': {0x2A, false}, '`': {0x32, false},
	'!': {0x12, true}, '@': {0x13, true}, '#': {0x14, true},
	'$': {0x15, true}, '%': {0x17, true}, '^': {0x16, true},
	'&': {0x1A, true}, '*': {0x1C, true}, '(': {0x19, true},
	')': {0x1D, true}, '_': {0x1B, true}, '+': {0x18, true},
	'{': {0x21, true}, '}': {0x1E, true}, '|': {0x2A, true},
	':': {0x29, true}, '"': {0x27, true}, '<': {0x2B, true},
	'>': {0x2F, true}, '?': {0x2C, true}, '~': {0x32, true},
}

func charKey(r rune) (code int, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return letterKeys[r], false, true
	case r >= 'A' && r <= 'Z':
		return letterKeys[r-'A'+'a'], true, true
	case r >= '0' && r <= '9':
		return digitKeys[r-'0'], false, true
	case r == ' ':
		return 0x31, false, true // kVK_Space
	case r == '\n':
		return 0x24, false, true // kVK_Return
	case r == '\t':
		return 0x30, false, true // kVK_Tab
	}
	if k, found := punctKeys[r]; found {
		return k.code, k.shift, true
	}
	return 0, false, false
}
