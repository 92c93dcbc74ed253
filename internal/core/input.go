package core

import "unicode/utf8"

// Named keys. Printable keys are identified by the character itself ("h", ":").
const (
	KeyEscape    = "Escape"
	KeyBackspace = "Backspace"
	KeyEnter     = "Enter"
)

// Source identifies the input surface a key event originated from.
type Source int

const (
	SourceLevel        Source = iota // The level view itself
	SourceCommandInput               // The command-line input box
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceLevel:
		return "Level"
	case SourceCommandInput:
		return "CommandInput"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key press abstracted from the terminal library.
type KeyEvent struct {
	// Key is either a single character or one of the Key* names.
	Key string

	Ctrl bool
	Alt  bool
	Meta bool

	Source Source
}

// Key creates a plain key event from the level surface.
func Key(k string) KeyEvent {
	return KeyEvent{Key: k}
}

// HasModifier reports whether a ctrl, alt or meta flag is set.
// Shift is folded into the character and never counts.
func (e KeyEvent) HasModifier() bool {
	return e.Ctrl || e.Alt || e.Meta
}

// IsPrintable reports whether the event carries exactly one character
// and no modifier combination.
func (e KeyEvent) IsPrintable() bool {
	return utf8.RuneCountInString(e.Key) == 1 && !e.HasModifier()
}
