package interact

// StepForKey maps a handle key press to a level step.
func StepForKey(key string) (Step, bool) {
	switch key {
	case "ArrowUp", "ArrowRight":
		return StepUp, true
	case "ArrowDown", "ArrowLeft":
		return StepDown, true
	}
	return 0, false
}

// Shortcut is a global editor command bound to a key chord.
type Shortcut int

const (
	NoShortcut Shortcut = iota
	Undo
	Redo
)

// ShortcutFor maps a key chord to an editor command. mod is Ctrl on most
// platforms and Cmd on macOS.
func ShortcutFor(key string, mod, shift bool) Shortcut {
	if !mod {
		return NoShortcut
	}
	switch {
	case key == "z" && !shift:
		return Undo
	case key == "y", key == "Z" && shift:
		return Redo
	}
	return NoShortcut
}
