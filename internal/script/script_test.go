package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/vim-quest/internal/controller"
	"github.com/vovakirdan/vim-quest/internal/levels"
)

const fullRun = `
start: 0
steps:
  - keys: "llllllkkkk"
  - action: complete
  - key: i
  - type: " Vim is powerful!"
  - key: Escape
  - action: complete
  - key: ":"
  - submit: wq
`

func newController(t *testing.T) *controller.Controller {
	t.Helper()
	c, err := controller.New(levels.Builtin())
	if err != nil {
		t.Fatalf("controller.New() failed: %v", err)
	}
	return c
}

func TestRunFullTutorial(t *testing.T) {
	s, err := Parse([]byte(fullRun))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	c := newController(t)
	s.Run(c)

	if c.Index() != 2 {
		t.Errorf("Index() = %d, expected 2", c.Index())
	}
	if got := c.Progress().String(); got != "3 / 3" {
		t.Errorf("Progress() = %s, expected 3 / 3", got)
	}
	if !strings.Contains(c.Feed().Latest(), "saved and quit") {
		t.Errorf("latest = %q", c.Feed().Latest())
	}
}

func TestEscapeAndEmptySubmit(t *testing.T) {
	s, err := Parse([]byte(`
start: 2
steps:
  - key: ":"
  - escape: true
  - key: ":"
  - submit: ""
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	c := newController(t)
	s.Run(c)

	if c.Frame().CommandLineVisible {
		t.Error("command line should be closed")
	}
	if !strings.HasPrefix(c.Feed().Latest(), "invalid command:") {
		t.Errorf("latest = %q, expected an invalid command message", c.Feed().Latest())
	}
	if c.Progress().Completed != 0 {
		t.Error("nothing should be completed")
	}
}

func TestSubmitWithoutCommandLine(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "never opened", script: "start: 2\nsteps:\n  - submit: wq\n"},
		{name: "closed with escape key", script: "start: 2\nsteps:\n  - key: \":\"\n  - key: Escape\n  - submit: wq\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse([]byte(tc.script))
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			c := newController(t)
			s.Run(c)

			if c.Current().Completed() {
				t.Error("wq without an open command line must not complete the stage")
			}
			if c.Frame().CommandLineVisible {
				t.Error("command line should be closed")
			}
		})
	}
}

func TestNavigationActions(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - action: prev
  - action: next
  - action: next
  - action: reset
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	c := newController(t)
	s.Run(c)
	if c.Index() != 1 {
		t.Errorf("Index() = %d, expected 1", c.Index())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "empty step", yaml: "steps:\n  - {}\n", want: "empty step"},
		{name: "two fields", yaml: "steps:\n  - key: a\n    keys: bc\n", want: "exactly one"},
		{name: "unknown action", yaml: "steps:\n  - action: jump\n", want: "unknown action"},
		{name: "bad yaml", yaml: "steps: [", want: "cannot parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Parse() error = %v, expected %q", err, tc.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(fullRun), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(s.Steps) != 8 {
		t.Errorf("len(Steps) = %d, expected 8", len(s.Steps))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestBundledWalkthrough(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "configs", "walkthrough.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	c := newController(t)
	s.Run(c)
	if !c.Progress().Done() {
		t.Errorf("walkthrough should finish every stage, got %s", c.Progress())
	}
}
