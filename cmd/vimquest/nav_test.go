package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/vim-quest/internal/script"
)

func TestRunNav(t *testing.T) {
	tests := []struct {
		name     string
		action   script.Action
		from     int
		expected string
	}{
		{"next wraps", script.ActionNext, 2, "[1] Stage 1: Dungeon Movement"},
		{"prev wraps", script.ActionPrev, 0, "[3] Stage 3: Command Line"},
		{"complete clamps", script.ActionComplete, 2, "[3] Stage 3: Command Line"},
		{"complete advances", script.ActionComplete, 0, "[2] Stage 2: Insert Mode"},
		{"reset stays", script.ActionReset, 1, "[2] Stage 2: Insert Mode"},
	}

	t.Setenv("HOME", t.TempDir())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagFrom = tc.from
			var buf bytes.Buffer
			runNav(&buf, tc.action)

			out := buf.String()
			if !strings.HasPrefix(out, tc.expected) {
				t.Errorf("output starts with %q, expected %q", firstLine(out), tc.expected)
			}
			if !strings.Contains(out, "Progress: ") {
				t.Errorf("output missing progress:\n%s", out)
			}
			if !strings.Contains(out, " started ---") {
				t.Errorf("feed should show the stage start:\n%s", out)
			}
		})
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func TestRunNavFallsBackOnBrokenConfig(t *testing.T) {
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { flagConfig = "" })
	flagFrom = 0

	var buf bytes.Buffer
	runNav(&buf, script.ActionNext)

	out := buf.String()
	if !strings.HasPrefix(out, "[2] Stage 2: Insert Mode") {
		t.Errorf("output starts with %q", firstLine(out))
	}
	// Default feed_lines shows both setup entries
	if !strings.Contains(out, " started ---") {
		t.Errorf("feed missing from output:\n%s", out)
	}
}
