package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
ui:
  feed_lines: 3
  theme:
    player: "9"
ssh:
  address: ":2222"
  idle_timeout: 5m
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.UI.FeedLines != 3 {
		t.Errorf("FeedLines = %d, expected 3", cfg.UI.FeedLines)
	}
	if cfg.UI.Theme.Player != "9" {
		t.Errorf("Player color = %q, expected 9", cfg.UI.Theme.Player)
	}
	// Unset fields keep their defaults
	if cfg.UI.TileWidth != DefaultConfig().UI.TileWidth {
		t.Errorf("TileWidth = %d, expected default", cfg.UI.TileWidth)
	}
	if cfg.UI.Theme.Exit != DefaultConfig().UI.Theme.Exit {
		t.Errorf("Exit color = %q, expected default", cfg.UI.Theme.Exit)
	}
	if cfg.SSH.Address != ":2222" || cfg.SSH.IdleTimeout.Std() != 5*time.Minute {
		t.Errorf("SSH = %+v", cfg.SSH)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ssh:\n  idle_timeout: soon\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Errorf("Load() error = %v, expected invalid duration", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{name: "empty document", yaml: "", wantErr: false},
		{name: "negative feed lines", yaml: "ui:\n  feed_lines: -1\n", wantErr: true},
		{name: "negative tile width", yaml: "ui:\n  tile_width: -2\n", wantErr: true},
		{name: "negative timeout", yaml: "ssh:\n  idle_timeout: -1m\n", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if (err != nil) != tc.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	got, err = ExpandHome("~/key")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if strings.HasPrefix(got, "~") || !strings.HasSuffix(got, "key") {
		t.Errorf("ExpandHome(~/key) = %q", got)
	}
}
