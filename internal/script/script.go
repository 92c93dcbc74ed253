// Package script replays scripted tutorial sessions without a terminal.
// Scripts are YAML documents listing key presses, command submissions and
// navigation actions that are fed to a controller in order.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/vim-quest/internal/controller"
	"github.com/vovakirdan/vim-quest/internal/core"
)

// Action names a navigation operation.
type Action string

const (
	ActionNext     Action = "next"
	ActionPrev     Action = "prev"
	ActionReset    Action = "reset"
	ActionComplete Action = "complete"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionNext, ActionPrev, ActionReset, ActionComplete:
		return true
	}
	return false
}

// Apply runs the action on the controller.
func (a Action) Apply(c *controller.Controller) {
	switch a {
	case ActionNext:
		c.Advance()
	case ActionPrev:
		c.Retreat()
	case ActionReset:
		c.ResetCurrent()
	case ActionComplete:
		c.CompleteAndAdvance()
	}
}

// Step is one scripted event. Exactly one field must be set.
type Step struct {
	Key    string  `yaml:"key,omitempty"`    // One named key ("Escape") or character
	Keys   string  `yaml:"keys,omitempty"`   // Every rune pressed in turn
	Type   string  `yaml:"type,omitempty"`   // Alias of keys, reads better for text
	Submit *string `yaml:"submit,omitempty"` // Command-line text
	Escape bool    `yaml:"escape,omitempty"` // Controller escape action
	Action Action  `yaml:"action,omitempty"`
}

// Script is a parsed replay file.
type Script struct {
	Start int    `yaml:"start"`
	Steps []Step `yaml:"steps"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: cannot read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and validates every step.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot parse: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st Step) validate() error {
	set := 0
	for _, ok := range []bool{st.Key != "", st.Keys != "", st.Type != "", st.Submit != nil, st.Escape, st.Action != ""} {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return fmt.Errorf("empty step")
	case set > 1:
		return fmt.Errorf("a step must contain exactly one of key, keys, type, submit, escape, action")
	case st.Action != "" && !st.Action.Valid():
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Run sets up the controller at the script's start index and applies every step.
func (s *Script) Run(c *controller.Controller) {
	c.Setup(s.Start)
	for _, st := range s.Steps {
		st.Apply(c)
	}
}

// Apply feeds one step to the controller.
func (st Step) Apply(c *controller.Controller) {
	switch {
	case st.Key != "":
		c.HandleKey(core.Key(st.Key))
	case st.Keys != "":
		pressAll(c, st.Keys)
	case st.Type != "":
		pressAll(c, st.Type)
	case st.Submit != nil:
		c.HandleCommandSubmit(*st.Submit)
	case st.Escape:
		c.HandleEscape()
	case st.Action != "":
		st.Action.Apply(c)
	}
}

func pressAll(c *controller.Controller, text string) {
	for _, r := range text {
		c.HandleKey(core.Key(string(r)))
	}
}
