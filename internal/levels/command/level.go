// Package command implements the third tutorial stage: opening the command
// line with ':' and leaving the editor with :wq.
package command

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/vim-quest/internal/core"
	"github.com/vovakirdan/vim-quest/internal/registry"
)

// ID is the registry identifier of the command-line level.
const ID = "command"

// DefaultStartText is the buffer shown while the level runs.
const DefaultStartText = "Write and quit with :wq"

const closedMessage = "Esc: closed the command line."

// Level simulates the ex command line. The editor stays in normal mode;
// the command line is an overlay tracked separately from the mode.
type Level struct {
	startText string

	buffer          string
	mode            core.Mode
	commandLineOpen bool
	completed       bool
}

// New creates the command-line level.
func New() *Level {
	return &Level{
		startText: DefaultStartText,
		buffer:    DefaultStartText,
	}
}

func init() {
	registry.Register(ID, 3, func() registry.Level {
		return New()
	})
}

func (l *Level) Title() string { return "Stage 3: Command Line" }
func (l *Level) Genre() string { return "Save & quit" }
func (l *Level) Objective() string {
	return "Press : to open the command line, type wq and press Enter to finish."
}
func (l *Level) Kind() core.Kind { return core.KindEditor }

// Completed reports whether :wq (or :x) has been submitted.
func (l *Level) Completed() bool { return l.completed }

// CommandLineOpen reports whether the command-line overlay is visible.
func (l *Level) CommandLineOpen() bool { return l.commandLineOpen }

// Text returns the current buffer content.
func (l *Level) Text() string { return l.buffer }

// Setup restores the buffer and hides the command line.
func (l *Level) Setup() core.Outcome {
	l.buffer = l.startText
	l.mode = core.ModeNormal
	l.commandLineOpen = false
	l.completed = false
	return core.Say(": opens the command line, u tries an undo-like action.")
}

// HandleKey handles ':' and 'u'. All keys are ignored after completion.
func (l *Level) HandleKey(ev core.KeyEvent) core.Outcome {
	if l.completed || ev.HasModifier() {
		return core.Ignored
	}

	switch ev.Key {
	case ":":
		l.commandLineOpen = true
		out := core.Say("You pressed :. Type a save command and press Enter.")
		out.FocusCommandLine = true
		return out
	case "u":
		l.buffer = l.startText
		return core.Say("u: undid the changes (simulated)")
	}
	return core.Ignored
}

// SubmitCommand interprets the command-line text. Submissions only count
// while the command line is open, and it is closed afterwards whatever
// the result.
func (l *Level) SubmitCommand(text string) core.Outcome {
	if !l.commandLineOpen {
		return core.Ignored
	}
	defer l.CloseCommandLine()

	cmd := strings.TrimSpace(text)
	switch cmd {
	case "wq", "x":
		l.completed = true
		out := core.Say(fmt.Sprintf(":%s saved and quit!", cmd))
		out.Completed = true
		return out
	case "w":
		return core.Say("Saved but not quit yet. Try :wq again.")
	default:
		return core.Say(fmt.Sprintf("invalid command: %s (use :wq in this stage)", cmd))
	}
}

// Escape closes an open command line. It does nothing otherwise.
func (l *Level) Escape() core.Outcome {
	if !l.commandLineOpen {
		return core.Ignored
	}
	l.CloseCommandLine()
	return core.Say(closedMessage)
}

// CloseCommandLine hides the overlay.
func (l *Level) CloseCommandLine() {
	l.commandLineOpen = false
}

// Buffer returns the renderable buffer state.
func (l *Level) Buffer() core.BufferView {
	return core.BufferView{Text: l.buffer, Mode: l.mode}
}

var (
	_ registry.Level            = (*Level)(nil)
	_ registry.CommandSubmitter = (*Level)(nil)
	_ registry.EscapeHandler    = (*Level)(nil)
	_ registry.CommandLine      = (*Level)(nil)
	_ registry.BufferViewer     = (*Level)(nil)
)
