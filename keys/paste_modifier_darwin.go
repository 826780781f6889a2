//go:build darwin

package keys

// PasteModifier returns the modifier held for the paste hotkey: Cmd+V on macOS.
func PasteModifier() Modifier {
	return ModSuper
}
