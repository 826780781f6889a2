//go:build windows

package keys

// Windows virtual key codes. Letters and digits are their uppercase ASCII
// values; punctuation uses the VK_OEM_* codes for a US layout.
type keystroke struct {
	code  int
	shift bool
}

var punctKeys = map[rune]keystroke{
	'.': {0xBE, false}, ',': {0xBC, false}, '/': {0xBF, false},
	';': {0xBA, false}, '\'': {0xDE, false}, '[': {0xDB, false},
	']': {0xDD, false}, '-': {0xBD, false}, '=': {0xBB, false},
	'\\': {0xDC, false}, '`': {0xC0, false},
	'!': {'1', true}, '@': {'2', true}, '#': {'3', true},
	'$': {'4', true}, '%': {'5', true}, '^': {'6', true},
	'&': {'7', true}, '*': {'8', true}, '(': {'9', true},
	')': {'0', true}, '_': {0xBD, true}, '+': {0xBB, true},
	'{': {0xDB, true}, '}': {0xDD, true}, '|': {0xDC, true},
	':': {0xBA, true}, '"': {0xDE, true}, '<': {0xBC, true},
	'>': {0xBE, true}, '?': {0xBF, true}, '~': {0xC0, true},
}

func charKey(r rune) (code int, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a' + 'A'), false, true
	case r >= 'A' && r <= 'Z':
		return int(r), true, true
	case r >= '0' && r <= '9':
		return int(r), false, true
	case r == ' ':
		return 0x20, false, true // VK_SPACE
	case r == '\n':
		return 0x0D, false, true // VK_RETURN
	case r == '\t':
		return 0x09, false, true // VK_TAB
	}
	if k, found := punctKeys[r]; found {
		return k.code, k.shift, true
	}
	return 0, false, false
}
