//go:build linux

package keys

import "testing"

func TestCharKeyLetters(t *testing.T) {
	code, shift, ok := charKey('a')
	if !ok || shift || code != 30 {
		t.Errorf("charKey('a') = %d,%v,%v", code, shift, ok)
	}
	code, shift, ok = charKey('A')
	if !ok || !shift || code != 30 {
		t.Errorf("charKey('A') = %d,%v,%v", code, shift, ok)
	}
}

func TestCharKeyShiftedPunct(t *testing.T) {
	code, shift, ok := charKey('?')
	if !ok || !shift || code != 53 {
		t.Errorf("charKey('?') = %d,%v,%v", code, shift, ok)
	}
}

func TestCharKeyWhitespace(t *testing.T) {
	for r, want := range map[rune]int{' ': 57, '\n': 28, '\t': 15} {
		code, shift, ok := charKey(r)
		if !ok || shift || code != want {
			t.Errorf("charKey(%q) = %d,%v,%v, want %d", r, code, shift, ok, want)
		}
	}
}

func TestCharKeyUnmapped(t *testing.T) {
	if _, _, ok := charKey('é'); ok {
		t.Error("expected no mapping for 'é'")
	}
}
