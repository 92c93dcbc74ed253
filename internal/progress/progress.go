// Package progress derives tutorial progress from level completion flags.
package progress

import (
	"fmt"

	"github.com/vovakirdan/vim-quest/internal/registry"
)

// Progress is the number of completed levels out of the total.
type Progress struct {
	Completed int
	Total     int
}

// Of counts the completed levels in the sequence.
func Of(levels []registry.Level) Progress {
	p := Progress{Total: len(levels)}
	for _, l := range levels {
		if l.Completed() {
			p.Completed++
		}
	}
	return p
}

// Ratio returns the completed fraction in [0, 1]. An empty sequence is 0.
func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Done reports whether every level is completed.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}

// String formats the progress as "completed / total".
func (p Progress) String() string {
	return fmt.Sprintf("%d / %d", p.Completed, p.Total)
}
