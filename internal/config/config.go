// Package config provides YAML-based application configuration for the
// tutorial: view settings, colors and the SSH server.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains all application configuration.
type Config struct {
	UI  UIConfig  `yaml:"ui"`
	SSH SSHConfig `yaml:"ssh"`
}

// UIConfig defines how the terminal view is laid out.
type UIConfig struct {
	FeedLines int   `yaml:"feed_lines"` // Number of newest feed entries shown
	TileWidth int   `yaml:"tile_width"` // Characters per grid tile
	Theme     Theme `yaml:"theme"`
}

// Theme holds ANSI color codes (lipgloss color strings) for view elements.
type Theme struct {
	Title    string `yaml:"title"`
	Genre    string `yaml:"genre"`
	Player   string `yaml:"player"`
	Exit     string `yaml:"exit"`
	Path     string `yaml:"path"`
	Tile     string `yaml:"tile"`
	Normal   string `yaml:"normal"`
	Insert   string `yaml:"insert"`
	Progress string `yaml:"progress"`
	Complete string `yaml:"complete"`
}

// SSHConfig defines the serve command defaults.
type SSHConfig struct {
	Address     string   `yaml:"address"`
	HostKeyPath string   `yaml:"host_key"` // Empty means ~/.vimquest/host_key
	IdleTimeout Duration `yaml:"idle_timeout"`
}

// Duration is a time.Duration that unmarshals from strings like "30m".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML formats the duration as a Go duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Validate fills zero values with defaults and rejects impossible settings.
func (c *Config) Validate() error {
	def := DefaultConfig()

	if c.UI.FeedLines < 0 {
		return fmt.Errorf("ui.feed_lines must not be negative, got %d", c.UI.FeedLines)
	}
	if c.UI.FeedLines == 0 {
		c.UI.FeedLines = def.UI.FeedLines
	}
	if c.UI.TileWidth < 0 {
		return fmt.Errorf("ui.tile_width must not be negative, got %d", c.UI.TileWidth)
	}
	if c.UI.TileWidth == 0 {
		c.UI.TileWidth = def.UI.TileWidth
	}
	c.UI.Theme = c.UI.Theme.withDefaults(def.UI.Theme)

	if c.SSH.Address == "" {
		c.SSH.Address = def.SSH.Address
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("ssh.idle_timeout must not be negative")
	}
	if c.SSH.IdleTimeout == 0 {
		c.SSH.IdleTimeout = def.SSH.IdleTimeout
	}
	return nil
}

func (t Theme) withDefaults(def Theme) Theme {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&t.Title, def.Title)
	fill(&t.Genre, def.Genre)
	fill(&t.Player, def.Player)
	fill(&t.Exit, def.Exit)
	fill(&t.Path, def.Path)
	fill(&t.Tile, def.Tile)
	fill(&t.Normal, def.Normal)
	fill(&t.Insert, def.Insert)
	fill(&t.Progress, def.Progress)
	fill(&t.Complete, def.Complete)
	return t
}
