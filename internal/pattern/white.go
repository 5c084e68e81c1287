package pattern

import (
	"time"

	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/param"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// White fills the whole matrix with one greyscale level. No speed
// parameter; the fill is recomputed only when the level changes.
type White struct {
	base
	level *param.Parameter

	lastLevel int
}

func NewWhite(out strip.Output, g layout.Grid) *White {
	level := param.Number("Level", "%", 50, 0, 100, false)
	return &White{
		base: base{
			kind:   KindWhite,
			name:   "White",
			out:    out,
			grid:   g,
			params: []*param.Parameter{level},
		},
		level: level,
	}
}

func (w *White) Start() {
	w.restart()
	w.lastLevel = -1
}

func (w *White) Tick(elapsed time.Duration) {
	if !w.due(elapsed) {
		return
	}
	lv := w.level.Value()
	if lv == w.lastLevel {
		return
	}
	w.lastLevel = lv
	v := uint8(lv * 255 / 100)
	w.out.SetAll(strip.RGB{R: v, G: v, B: v})
	_ = w.out.Show()
}
