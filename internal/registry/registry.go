// Package registry provides the ordered catalog of tutorial levels.
// Levels register themselves in init() functions, allowing the platform
// to build the level sequence without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/vim-quest/internal/core"
)

// Level is the contract every tutorial level implements.
// Levels contain pure logic with no external dependencies (especially no
// Bubble Tea). The controller handles logging, progress and rendering.
type Level interface {
	// Title returns the display name (e.g., "Stage 1: Dungeon Movement").
	Title() string

	// Genre returns a short category label shown next to the title.
	Genre() string

	// Objective describes what the player has to do to finish the level.
	Objective() string

	// Kind selects the grid or editor view.
	Kind() core.Kind

	// Completed reports whether the level has been finished since the
	// last Setup. It only ever goes from false to true.
	Completed() bool

	// Setup re-initializes the mutable state to the starting condition.
	// The returned outcome carries the level's introductory hint.
	Setup() core.Outcome

	// HandleKey applies one key press.
	HandleKey(ev core.KeyEvent) core.Outcome
}

// CommandSubmitter is implemented by levels that accept command-line text.
type CommandSubmitter interface {
	SubmitCommand(text string) core.Outcome
}

// EscapeHandler is implemented by levels that react to the escape action.
type EscapeHandler interface {
	Escape() core.Outcome
}

// CommandLine is implemented by levels that own a command-line overlay.
type CommandLine interface {
	CommandLineOpen() bool
	CloseCommandLine()
}

// GridViewer is implemented by grid levels.
type GridViewer interface {
	Grid() core.GridView
}

// BufferViewer is implemented by editor levels.
type BufferViewer interface {
	Buffer() core.BufferView
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Order int
	Title string
}

// Factory is a function that creates a new instance of a level.
type Factory func() Level

type entry struct {
	info    LevelInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a level factory to the catalog at the given position.
// Typically called from a level's init() function.
// Panics if the ID or the order is already taken.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}
	for _, e := range entries {
		if e.info.Order == order {
			panic(fmt.Sprintf("registry: order %d already used by %q", order, e.info.ID))
		}
	}

	// Get title by creating a temporary instance
	entries[id] = entry{
		info:    LevelInfo{ID: id, Order: order, Title: f().Title()},
		factory: f,
	}
}

// List returns information about all registered levels in play order.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})

	return result
}

// Create instantiates a new level by its ID.
// Returns an error if the level ID is not registered.
func Create(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}

	return e.factory(), nil
}

// Sequence creates one instance of every registered level in play order.
func Sequence() []Level {
	infos := List()

	mu.RLock()
	defer mu.RUnlock()

	levels := make([]Level, 0, len(infos))
	for _, info := range infos {
		levels = append(levels, entries[info.ID].factory())
	}
	return levels
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
