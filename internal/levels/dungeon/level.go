// Package dungeon implements the first tutorial stage: walking a grid with
// the h/j/k/l cursor keys until the player reaches the exit tile.
package dungeon

import (
	"fmt"

	"github.com/vovakirdan/vim-quest/internal/core"
	"github.com/vovakirdan/vim-quest/internal/registry"
)

// ID is the registry identifier of the dungeon level.
const ID = "dungeon"

// Default layout.
const (
	DefaultWidth  = 7
	DefaultHeight = 5
)

var (
	DefaultStart = core.Pos(0, 4)
	DefaultExit  = core.Pos(6, 0)
)

// moves maps the vim cursor keys to unit deltas.
var moves = map[string]core.Position{
	"h": {X: -1},
	"l": {X: 1},
	"k": {Y: -1},
	"j": {Y: 1},
}

// Level is a grid movement puzzle.
type Level struct {
	width  int
	height int
	start  core.Position
	exit   core.Position

	player    core.Position
	completed bool
}

// New creates the dungeon level with its default layout.
func New() *Level {
	return NewWithLayout(DefaultWidth, DefaultHeight, DefaultStart, DefaultExit)
}

// NewWithLayout creates a dungeon of the given size.
// Start and exit are clamped into the grid.
func NewWithLayout(width, height int, start, exit core.Position) *Level {
	width = max(width, 1)
	height = max(height, 1)
	l := &Level{
		width:  width,
		height: height,
		start:  start.ClampTo(width, height),
		exit:   exit.ClampTo(width, height),
	}
	l.player = l.start
	return l
}

func init() {
	registry.Register(ID, 1, func() registry.Level {
		return New()
	})
}

func (l *Level) Title() string { return "Stage 1: Dungeon Movement" }
func (l *Level) Genre() string { return "Roguelike movement" }
func (l *Level) Objective() string {
	return "Move the player to the exit with h / j / k / l. This is the basis of cursor movement in Vim."
}
func (l *Level) Kind() core.Kind { return core.KindGrid }

// Completed reports whether the player has reached the exit.
func (l *Level) Completed() bool { return l.completed }

// Player returns the current player position.
func (l *Level) Player() core.Position { return l.player }

// Setup puts the player back on the start tile.
func (l *Level) Setup() core.Outcome {
	l.player = l.start
	l.completed = false
	return core.Say("h = left, j = down, k = up, l = right.")
}

// HandleKey moves the player one tile. Keys are ignored once the exit is reached.
func (l *Level) HandleKey(ev core.KeyEvent) core.Outcome {
	if l.completed || ev.HasModifier() {
		return core.Ignored
	}
	delta, ok := moves[ev.Key]
	if !ok {
		return core.Ignored
	}

	l.player = l.player.Add(delta).ClampTo(l.width, l.height)
	out := core.Say(fmt.Sprintf("Moved to %s", l.player))

	if l.player == l.exit {
		l.completed = true
		out.Completed = true
		out.Messages = append(out.Messages, "You reached the exit! Next up: insert mode.")
	}
	return out
}

// Grid returns the renderable grid state.
func (l *Level) Grid() core.GridView {
	return core.GridView{
		Width:  l.width,
		Height: l.height,
		Player: l.player,
		Exit:   l.exit,
		Path:   l.path(),
	}
}

// path decorates the start row from the left edge up to the start column.
func (l *Level) path() []core.Position {
	cells := make([]core.Position, 0, l.start.X+1)
	for x := 0; x <= l.start.X; x++ {
		cells = append(cells, core.Pos(x, l.start.Y))
	}
	return cells
}

var (
	_ registry.Level      = (*Level)(nil)
	_ registry.GridViewer = (*Level)(nil)
)
