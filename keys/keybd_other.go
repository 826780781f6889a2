//go:build !linux && !darwin && !windows

package keys

import "errors"

type KeybdEmitter struct{}

func NewEmitter() (*KeybdEmitter, error) {
	return nil, errors.New("key synthesis is not supported on this platform")
}

func (e *KeybdEmitter) Press(r rune) error   { return errors.New("unsupported platform") }
func (e *KeybdEmitter) Release(r rune) error { return errors.New("unsupported platform") }
func (e *KeybdEmitter) Pressed(mod Modifier, fn func() error) error {
	return errors.New("unsupported platform")
}
