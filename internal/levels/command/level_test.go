package command

import (
	"testing"

	"github.com/vovakirdan/vim-quest/internal/core"
)

func TestSubmitCommands(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		completed bool
		message   string
	}{
		{name: "write quit", text: "wq", completed: true, message: ":wq saved and quit!"},
		{name: "x", text: "x", completed: true, message: ":x saved and quit!"},
		{name: "padded", text: "  wq \n", completed: true, message: ":wq saved and quit!"},
		{name: "write only", text: "w", completed: false, message: "Saved but not quit yet. Try :wq again."},
		{name: "invalid", text: "zz", completed: false, message: "invalid command: zz (use :wq in this stage)"},
		{name: "empty", text: "", completed: false, message: "invalid command:  (use :wq in this stage)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			l.Setup()

			open := l.HandleKey(core.Key(":"))
			if !open.FocusCommandLine || !l.CommandLineOpen() {
				t.Fatal(": should open and focus the command line")
			}

			out := l.SubmitCommand(tc.text)
			if l.Completed() != tc.completed {
				t.Errorf("Completed() = %v, expected %v", l.Completed(), tc.completed)
			}
			if out.Completed != tc.completed {
				t.Errorf("outcome Completed = %v, expected %v", out.Completed, tc.completed)
			}
			if l.CommandLineOpen() {
				t.Error("command line should always close after submit")
			}
			if len(out.Messages) != 1 || out.Messages[0] != tc.message {
				t.Errorf("messages = %q, expected [%q]", out.Messages, tc.message)
			}
		})
	}
}

func TestUndoResetsBuffer(t *testing.T) {
	l := New()
	l.Setup()
	l.buffer = "scribbles"

	out := l.HandleKey(core.Key("u"))
	if !out.Handled || l.Text() != DefaultStartText {
		t.Errorf("u should restore the start text, got %q", l.Text())
	}
	if l.CommandLineOpen() || l.Completed() {
		t.Error("u must not touch the command line or completion")
	}
}

func TestEscapeClosesCommandLine(t *testing.T) {
	l := New()
	l.Setup()

	if out := l.Escape(); out.Handled {
		t.Error("Escape() with a closed command line should do nothing")
	}

	l.HandleKey(core.Key(":"))
	out := l.Escape()
	if l.CommandLineOpen() {
		t.Error("Escape() should close the command line")
	}
	if len(out.Messages) != 1 || out.Messages[0] != closedMessage {
		t.Errorf("messages = %q", out.Messages)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	l := New()
	l.Setup()
	for _, k := range []string{"i", "w", "q", core.KeyEscape, core.KeyEnter} {
		if out := l.HandleKey(core.Key(k)); out.Handled {
			t.Errorf("%q should be ignored", k)
		}
	}
}

func TestCompletionIsTerminal(t *testing.T) {
	l := New()
	l.Setup()
	l.HandleKey(core.Key(":"))
	l.SubmitCommand("wq")

	if out := l.HandleKey(core.Key(":")); out.Handled || l.CommandLineOpen() {
		t.Error(": should be ignored after completion")
	}

	for _, text := range []string{"zz", "wq"} {
		out := l.SubmitCommand(text)
		if out.Handled || out.Completed {
			t.Errorf("submit %q after completion should be ignored, got %+v", text, out)
		}
	}
	if !l.Completed() {
		t.Error("completion must never revert")
	}
}

func TestSubmitRequiresOpenCommandLine(t *testing.T) {
	tests := []struct {
		name  string
		setup func(l *Level)
	}{
		{name: "never opened", setup: func(*Level) {}},
		{name: "closed by escape", setup: func(l *Level) {
			l.HandleKey(core.Key(":"))
			l.Escape()
		}},
		{name: "closed by previous submit", setup: func(l *Level) {
			l.HandleKey(core.Key(":"))
			l.SubmitCommand("w")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			l.Setup()
			tc.setup(l)

			out := l.SubmitCommand("wq")
			if out.Handled || len(out.Messages) != 0 {
				t.Errorf("submit with a closed command line = %+v, expected ignored", out)
			}
			if l.Completed() {
				t.Error("wq without an open command line must not complete")
			}
		})
	}
}
