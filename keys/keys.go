// Package keys abstracts synthesized keyboard events. The real emitter
// drives github.com/micmonay/keybd_event; tests use the Fake.
package keys

// Modifier names a held modifier key.
type Modifier int

const (
	ModNone Modifier = iota
	ModCtrl
	ModSuper
)

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "ctrl"
	case ModSuper:
		return "super"
	default:
		return "none"
	}
}

// Emitter synthesizes key events on the host.
type Emitter interface {
	// Press sends a key-down for the character.
	Press(r rune) error
	// Release sends a key-up for the character.
	Release(r rune) error
	// Pressed holds mod for the duration of fn.
	Pressed(mod Modifier, fn func() error) error
}
