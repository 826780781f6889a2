//go:build !darwin

package keys

// PasteModifier returns the modifier held for the paste hotkey: Ctrl+V
// everywhere except macOS.
func PasteModifier() Modifier {
	return ModCtrl
}
