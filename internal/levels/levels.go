// Package levels wires the built-in tutorial stages into the registry.
package levels

import (
	"github.com/vovakirdan/vim-quest/internal/registry"

	// Import levels to register them
	_ "github.com/vovakirdan/vim-quest/internal/levels/command"
	_ "github.com/vovakirdan/vim-quest/internal/levels/dungeon"
	_ "github.com/vovakirdan/vim-quest/internal/levels/insert"
)

// Builtin creates a fresh instance of every built-in stage in play order.
func Builtin() []registry.Level {
	return registry.Sequence()
}
