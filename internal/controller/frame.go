package controller

import (
	"github.com/vovakirdan/vim-quest/internal/core"
	"github.com/vovakirdan/vim-quest/internal/progress"
	"github.com/vovakirdan/vim-quest/internal/registry"
)

// Frame is everything the presentation layer needs to draw the active level.
type Frame struct {
	Index     int
	Title     string
	Genre     string
	Objective string
	Kind      core.Kind

	// Grid is set for grid levels, Buffer for editor levels.
	Grid   *core.GridView
	Buffer *core.BufferView

	CommandLineVisible bool
	// FocusCommandLine asks the view to move input focus to the
	// command line. It is only set on the frame following the request.
	FocusCommandLine bool

	CompleteVisible bool
	Progress        progress.Progress

	// Feed holds the message log, newest first.
	Feed []string
}

// Renderer draws frames. Render is called once at the end of every
// controller operation that reached the active level.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f Frame) { fn(f) }

type nopRenderer struct{}

func (nopRenderer) Render(Frame) {}

func buildFrame(index int, level registry.Level, levels []registry.Level) Frame {
	f := Frame{
		Index:           index,
		Title:           level.Title(),
		Genre:           level.Genre(),
		Objective:       level.Objective(),
		Kind:            level.Kind(),
		CompleteVisible: level.Completed(),
		Progress:        progress.Of(levels),
	}

	if gv, ok := level.(registry.GridViewer); ok && f.Kind == core.KindGrid {
		g := gv.Grid()
		f.Grid = &g
	}
	if bv, ok := level.(registry.BufferViewer); ok && f.Kind == core.KindEditor {
		b := bv.Buffer()
		f.Buffer = &b
	}
	if cl, ok := level.(registry.CommandLine); ok {
		f.CommandLineVisible = cl.CommandLineOpen()
	}
	return f
}
