package keys

import "fmt"

// FakeEmitter records emitted key events for tests.
type FakeEmitter struct {
	Ops []string // "press h", "release h", "hold ctrl", "unhold ctrl"

	// FailOn makes Press/Release return an error for this character.
	FailOn rune
	// Err is returned for every call when set.
	Err error
}

func NewFake() *FakeEmitter {
	return &FakeEmitter{}
}

func (f *FakeEmitter) Press(r rune) error {
	if f.Err != nil {
		return f.Err
	}
	if f.FailOn != 0 && r == f.FailOn {
		return fmt.Errorf("no key mapping for %q", r)
	}
	f.Ops = append(f.Ops, fmt.Sprintf("press %c", r))
	return nil
}

func (f *FakeEmitter) Release(r rune) error {
	if f.Err != nil {
		return f.Err
	}
	if f.FailOn != 0 && r == f.FailOn {
		return fmt.Errorf("no key mapping for %q", r)
	}
	f.Ops = append(f.Ops, fmt.Sprintf("release %c", r))
	return nil
}

func (f *FakeEmitter) Pressed(mod Modifier, fn func() error) error {
	if f.Err != nil {
		return f.Err
	}
	f.Ops = append(f.Ops, "hold "+mod.String())
	err := fn()
	f.Ops = append(f.Ops, "unhold "+mod.String())
	return err
}
