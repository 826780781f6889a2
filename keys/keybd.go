//go:build linux || darwin || windows

package keys

import (
	"fmt"

	"github.com/micmonay/keybd_event"
)

// KeybdEmitter emits key events through keybd_event (uinput on Linux,
// CGEvent on macOS, SendInput on Windows).
type KeybdEmitter struct {
	kb   keybd_event.KeyBonding
	held Modifier
}

func NewEmitter() (*KeybdEmitter, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, err
	}
	return &KeybdEmitter{kb: kb}, nil
}

func (e *KeybdEmitter) set(r rune) error {
	code, shift, ok := charKey(r)
	if !ok {
		return fmt.Errorf("no key mapping for %q", r)
	}
	e.kb.Clear()
	e.kb.SetKeys(code)
	if shift {
		e.kb.HasSHIFT(true)
	}
	switch e.held {
	case ModCtrl:
		e.kb.HasCTRL(true)
	case ModSuper:
		e.kb.HasSuper(true)
	}
	return nil
}

func (e *KeybdEmitter) Press(r rune) error {
	if err := e.set(r); err != nil {
		return err
	}
	return e.kb.Press()
}

func (e *KeybdEmitter) Release(r rune) error {
	if err := e.set(r); err != nil {
		return err
	}
	return e.kb.Release()
}

func (e *KeybdEmitter) Pressed(mod Modifier, fn func() error) error {
	e.held = mod
	defer func() { e.held = ModNone }()
	return fn()
}
