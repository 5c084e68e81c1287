package pattern

import (
	"time"

	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/param"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// Monochrome fills the matrix with a single palette color at a chosen
// brightness. Like White it only recomputes when a parameter moved.
type Monochrome struct {
	base
	palette *param.Parameter
	level   *param.Parameter

	lastPalette int
	lastLevel   int
}

func NewMonochrome(out strip.Output, g layout.Grid) *Monochrome {
	palette := param.Number("Color", "", 0, 0, 59, true)
	level := param.Number("Level", "%", 50, 0, 100, false)
	return &Monochrome{
		base: base{
			kind:   KindMonochrome,
			name:   "Monochrome",
			out:    out,
			grid:   g,
			params: []*param.Parameter{palette, level},
		},
		palette: palette,
		level:   level,
	}
}

func (m *Monochrome) Start() {
	m.restart()
	m.lastPalette = -1
	m.lastLevel = -1
}

func (m *Monochrome) Tick(elapsed time.Duration) {
	if !m.due(elapsed) {
		return
	}
	idx, lv := m.palette.Value(), m.level.Value()
	if idx == m.lastPalette && lv == m.lastLevel {
		return
	}
	m.lastPalette, m.lastLevel = idx, lv
	m.out.SetAllHSV(strip.HSV{
		H: strip.PaletteHue(idx),
		S: 255,
		V: uint8(lv * 255 / 100),
	})
	_ = m.out.Show()
}
