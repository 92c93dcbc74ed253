// Package insert implements the second tutorial stage: entering insert
// mode, typing a phrase and returning to normal mode with Escape.
package insert

import (
	"unicode/utf8"

	"github.com/vovakirdan/vim-quest/internal/core"
	"github.com/vovakirdan/vim-quest/internal/registry"
)

// ID is the registry identifier of the insert-mode level.
const ID = "insert"

const (
	DefaultStartText  = "The dungeon awaits…"
	DefaultTargetText = "The dungeon awaits… Vim is powerful!"
)

// Level is a modal text buffer with Normal and Insert modes.
// The buffer only changes while in Insert mode, and completion is only
// checked on the Escape transition back to Normal.
type Level struct {
	startText  string
	targetText string

	buffer    string
	mode      core.Mode
	completed bool
}

// New creates the insert-mode level with its default texts.
func New() *Level {
	return NewWithText(DefaultStartText, DefaultTargetText)
}

// NewWithText creates an insert-mode level for the given texts.
func NewWithText(start, target string) *Level {
	return &Level{
		startText:  start,
		targetText: target,
		buffer:     start,
	}
}

func init() {
	registry.Register(ID, 2, func() registry.Level {
		return New()
	})
}

func (l *Level) Title() string { return "Stage 2: Insert Mode" }
func (l *Level) Genre() string { return "Text editing" }
func (l *Level) Objective() string {
	return `Press i to enter insert mode, type " Vim is powerful!" at the end and return with Esc.`
}
func (l *Level) Kind() core.Kind { return core.KindEditor }

// Completed reports whether the target text was confirmed with Escape.
func (l *Level) Completed() bool { return l.completed }

// Mode returns the current editing mode.
func (l *Level) Mode() core.Mode { return l.mode }

// Text returns the current buffer content.
func (l *Level) Text() string { return l.buffer }

// Setup restores the starting text in normal mode.
func (l *Level) Setup() core.Outcome {
	l.buffer = l.startText
	l.mode = core.ModeNormal
	l.completed = false
	return core.Say("i enters insert mode, Esc returns to normal mode. Backspace works too.")
}

// HandleKey applies one key press. All keys are ignored after completion.
func (l *Level) HandleKey(ev core.KeyEvent) core.Outcome {
	if l.completed {
		return core.Ignored
	}

	if l.mode == core.ModeNormal {
		if ev.Key == "i" && !ev.HasModifier() {
			l.mode = core.ModeInsert
			return core.Say("Entered insert mode. Start typing.")
		}
		return core.Ignored
	}

	switch {
	case ev.Key == core.KeyEscape:
		return l.exitInsertMode()
	case ev.Key == core.KeyBackspace:
		l.deleteLast()
		return core.Outcome{Handled: true}
	case ev.IsPrintable():
		l.buffer += ev.Key
		return core.Outcome{Handled: true}
	}
	return core.Ignored
}

// Escape leaves insert mode, the same as pressing the Escape key.
func (l *Level) Escape() core.Outcome {
	if l.completed {
		return core.Ignored
	}
	return l.exitInsertMode()
}

func (l *Level) exitInsertMode() core.Outcome {
	if l.mode != core.ModeInsert {
		return core.Ignored
	}
	l.mode = core.ModeNormal
	out := core.Say("Back in normal mode.")

	if l.buffer == l.targetText {
		l.completed = true
		out.Completed = true
		out.Messages = append(out.Messages, "You returned to normal mode with Esc! On to the save command.")
	}
	return out
}

// deleteLast removes the final rune; an empty buffer is left alone.
func (l *Level) deleteLast() {
	if l.buffer == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(l.buffer)
	l.buffer = l.buffer[:len(l.buffer)-size]
}

// Buffer returns the renderable buffer state.
func (l *Level) Buffer() core.BufferView {
	return core.BufferView{Text: l.buffer, Mode: l.mode}
}

var (
	_ registry.Level         = (*Level)(nil)
	_ registry.EscapeHandler = (*Level)(nil)
	_ registry.BufferViewer  = (*Level)(nil)
)
