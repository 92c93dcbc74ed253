package core

// Kind selects which view a level is rendered with.
type Kind int

const (
	KindGrid Kind = iota
	KindEditor
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGrid:
		return "grid"
	case KindEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// Mode is the editing mode of an editor level.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns the lowercase mode name ("normal", "insert").
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Badge returns the uppercase label shown in the mode indicator.
func (m Mode) Badge() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "?"
	}
}

// Outcome is the result of feeding one event to a level.
// Levels never log or draw; the controller applies the outcome.
type Outcome struct {
	// Handled is true if the event caused any state change or message.
	Handled bool

	// Messages are feed entries in emission order (oldest first).
	Messages []string

	// Completed is true only on the event that flipped the level's
	// completed flag from false to true.
	Completed bool

	// FocusCommandLine requests input focus on the command-line surface.
	FocusCommandLine bool
}

// Ignored is the outcome of an event the level does not react to.
var Ignored = Outcome{}

// Say returns a handled outcome carrying the given messages.
func Say(messages ...string) Outcome {
	return Outcome{Handled: true, Messages: messages}
}

// GridView is the renderable state of a grid level.
type GridView struct {
	Width  int
	Height int
	Player Position
	Exit   Position
	Path   []Position // Static decoration cells
}

// BufferView is the renderable state of an editor level.
type BufferView struct {
	Text string
	Mode Mode
}

// CursorGlyph is appended to the buffer while in insert mode.
const CursorGlyph = "▌"

// Display returns the buffer text with the insert-mode cursor glyph.
func (b BufferView) Display() string {
	if b.Mode == ModeInsert {
		return b.Text + CursorGlyph
	}
	return b.Text
}
