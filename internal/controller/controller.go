// Package controller sequences the tutorial levels and routes input to the
// active one. It owns the current index, applies level outcomes to the
// message feed and requests a render after every operation.
package controller

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vim-quest/internal/core"
	"github.com/vovakirdan/vim-quest/internal/feed"
	"github.com/vovakirdan/vim-quest/internal/progress"
	"github.com/vovakirdan/vim-quest/internal/registry"
)

// ErrNoLevels is returned when the controller is built without levels.
var ErrNoLevels = errors.New("controller: empty level sequence")

// CommandLineClosedMessage is logged when Escape closes the command line.
const CommandLineClosedMessage = "Esc: closed the command line."

// Controller drives a fixed sequence of levels.
// It is not safe for concurrent use; each session owns its own controller.
type Controller struct {
	levels   []registry.Level
	index    int
	feed     *feed.Feed
	renderer Renderer
	logger   *log.Logger

	// focusPending is consumed by the next render.
	focusPending bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the presentation collaborator.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithFeed sets the message feed. A fresh feed is used by default.
func WithFeed(f *feed.Feed) Option {
	return func(c *Controller) {
		if f != nil {
			c.feed = f
		}
	}
}

// WithLogger sets the diagnostics logger. Diagnostics are discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller over the given levels. The levels are used in
// the given order for the lifetime of the controller. Call Setup to start.
func New(levels []registry.Level, opts ...Option) (*Controller, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	c := &Controller{
		levels:   levels,
		feed:     feed.New(),
		renderer: nopRenderer{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Setup makes the level at index active and re-initializes it.
// The index is wrapped into range.
func (c *Controller) Setup(index int) {
	n := len(c.levels)
	c.index = ((index % n) + n) % n
	c.focusPending = false

	level := c.levels[c.index]
	c.feed.Add(fmt.Sprintf("--- %s started ---", level.Title()))
	c.apply(level.Setup())

	c.logger.Debug("level setup", "index", c.index, "level", level.Title())
	c.render()
}

// HandleKey forwards a key press to the active level. Events coming from
// the command-line input box are ignored to avoid handling them twice.
// Escape with the command line open goes through HandleEscape.
func (c *Controller) HandleKey(ev core.KeyEvent) {
	if ev.Source == core.SourceCommandInput {
		return
	}
	if ev.Key == core.KeyEscape && c.commandLineOpen() {
		c.HandleEscape()
		return
	}
	c.apply(c.Current().HandleKey(ev))
	c.render()
}

// HandleCommandSubmit forwards command-line text to the active level if it
// accepts commands.
func (c *Controller) HandleCommandSubmit(text string) {
	submitter, ok := c.Current().(registry.CommandSubmitter)
	if !ok {
		return
	}
	c.apply(submitter.SubmitCommand(text))
	c.render()
}

func (c *Controller) commandLineOpen() bool {
	cl, ok := c.Current().(registry.CommandLine)
	return ok && cl.CommandLineOpen()
}

// HandleEscape closes an open command line, and otherwise forwards the
// escape action to the level.
func (c *Controller) HandleEscape() {
	level := c.Current()

	if cl, ok := level.(registry.CommandLine); ok && cl.CommandLineOpen() {
		cl.CloseCommandLine()
		c.feed.Add(CommandLineClosedMessage)
		c.render()
		return
	}

	if eh, ok := level.(registry.EscapeHandler); ok {
		c.apply(eh.Escape())
	}
	c.render()
}

// Advance moves to the next level, wrapping to the first.
func (c *Controller) Advance() {
	c.Setup(c.index + 1)
}

// Retreat moves to the previous level, wrapping to the last.
func (c *Controller) Retreat() {
	c.Setup(c.index - 1)
}

// CompleteAndAdvance moves to the next level but stays on the last one.
func (c *Controller) CompleteAndAdvance() {
	c.Setup(min(c.index+1, len(c.levels)-1))
}

// ResetCurrent restarts the active level.
func (c *Controller) ResetCurrent() {
	c.Setup(c.index)
}

// Index returns the position of the active level.
func (c *Controller) Index() int { return c.index }

// Current returns the active level.
func (c *Controller) Current() registry.Level { return c.levels[c.index] }

// Levels returns the level sequence.
func (c *Controller) Levels() []registry.Level { return c.levels }

// Feed returns the message feed.
func (c *Controller) Feed() *feed.Feed { return c.feed }

// Progress returns the completed fraction of the sequence.
func (c *Controller) Progress() progress.Progress { return progress.Of(c.levels) }

// Frame returns the view state of the active level.
func (c *Controller) Frame() Frame {
	f := buildFrame(c.index, c.Current(), c.levels)
	f.Feed = c.feed.Entries()
	return f
}

func (c *Controller) apply(out core.Outcome) {
	for _, msg := range out.Messages {
		c.feed.Add(msg)
	}
	if out.FocusCommandLine {
		c.focusPending = true
	}
	if out.Completed {
		c.logger.Info("level completed",
			"index", c.index,
			"level", c.Current().Title(),
			"progress", c.Progress().String(),
		)
	}
}

func (c *Controller) render() {
	f := c.Frame()
	f.FocusCommandLine = c.focusPending && f.CommandLineVisible
	c.focusPending = false
	c.renderer.Render(f)
}
