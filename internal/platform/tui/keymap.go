package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vim-quest/internal/core"
)

// NavKeyMap defines the navigation bindings. They use ctrl/tab chords so
// that every plain character stays available to the levels.
type NavKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Reset    key.Binding
	Complete key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k NavKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Reset, k.Complete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k NavKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Reset},
		{k.Complete, k.Quit},
	}
}

// DefaultNavKeyMap returns default key bindings.
func DefaultNavKeyMap() NavKeyMap {
	return NavKeyMap{
		Next: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "next stage"),
		),
		Prev: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("^p", "prev stage"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "reset"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "continue"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
	}
}

// KeyEvents translates a Bubble Tea key message to level key events.
// A multi-rune message (e.g. a paste) yields one event per rune.
// Keys with no level meaning yield nil.
func KeyEvents(msg tea.KeyMsg) []core.KeyEvent {
	switch msg.Type {
	case tea.KeyEsc:
		return []core.KeyEvent{{Key: core.KeyEscape, Alt: msg.Alt}}
	case tea.KeyBackspace:
		return []core.KeyEvent{{Key: core.KeyBackspace, Alt: msg.Alt}}
	case tea.KeyEnter:
		return []core.KeyEvent{{Key: core.KeyEnter, Alt: msg.Alt}}
	case tea.KeySpace:
		return []core.KeyEvent{{Key: " ", Alt: msg.Alt}}
	case tea.KeyRunes:
		events := make([]core.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, core.KeyEvent{Key: string(r), Alt: msg.Alt})
		}
		return events
	}

	// Ctrl chords arrive as their own key types, e.g. "ctrl+a"
	if name, ok := strings.CutPrefix(msg.String(), "ctrl+"); ok {
		return []core.KeyEvent{{Key: name, Ctrl: true}}
	}
	return nil
}
