package progress

import (
	"testing"

	"github.com/vovakirdan/vim-quest/internal/core"
	"github.com/vovakirdan/vim-quest/internal/registry"
)

type fakeLevel struct{ done bool }

func (f fakeLevel) Title() string                        { return "" }
func (f fakeLevel) Genre() string                        { return "" }
func (f fakeLevel) Objective() string                    { return "" }
func (f fakeLevel) Kind() core.Kind                      { return core.KindGrid }
func (f fakeLevel) Completed() bool                      { return f.done }
func (f fakeLevel) Setup() core.Outcome                  { return core.Ignored }
func (f fakeLevel) HandleKey(core.KeyEvent) core.Outcome { return core.Ignored }

func levels(flags ...bool) []registry.Level {
	out := make([]registry.Level, len(flags))
	for i, f := range flags {
		out[i] = fakeLevel{done: f}
	}
	return out
}

func TestOf(t *testing.T) {
	tests := []struct {
		name   string
		levels []registry.Level
		text   string
		ratio  float64
		done   bool
	}{
		{name: "none", levels: levels(false, false, false), text: "0 / 3", ratio: 0},
		{name: "middle only", levels: levels(false, true, false), text: "1 / 3", ratio: 1.0 / 3},
		{name: "two", levels: levels(true, false, true), text: "2 / 3", ratio: 2.0 / 3},
		{name: "all", levels: levels(true, true, true), text: "3 / 3", ratio: 1, done: true},
		{name: "empty", levels: nil, text: "0 / 0", ratio: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Of(tc.levels)
			if p.String() != tc.text {
				t.Errorf("String() = %q, expected %q", p.String(), tc.text)
			}
			if p.Ratio() != tc.ratio {
				t.Errorf("Ratio() = %v, expected %v", p.Ratio(), tc.ratio)
			}
			if p.Done() != tc.done {
				t.Errorf("Done() = %v, expected %v", p.Done(), tc.done)
			}
		})
	}
}
