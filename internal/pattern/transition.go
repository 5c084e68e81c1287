package pattern

import (
	"time"

	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/param"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// Transition sub-modes, matched against the mode parameter's index.
const (
	modeRepeat = iota
	modeRebound
)

const phaseMax = 255

// Transition sweeps the whole matrix through the hue ramp between two
// palette colors, one phase step per frame over 256 positions. Repeat
// restarts the ramp at the end; Rebound runs it back and forth.
type Transition struct {
	base
	color1 *param.Parameter
	color2 *param.Parameter
	mode   *param.Parameter

	phase int
	dir   int
	hue1  int32
	hue2  int32
}

func NewTransition(out strip.Output, g layout.Grid) (*Transition, error) {
	speed := param.Number("Speed", "", 5, Frozen, Continuous, false)
	color1 := param.Number("Color 1", "", 0, 0, 59, true)
	color2 := param.Number("Color 2", "", 30, 0, 59, true)
	mode, err := param.Enum("Mode", modeRepeat, "Repeat", "Rebound")
	if err != nil {
		return nil, err
	}
	return &Transition{
		base: base{
			kind:   KindTransition,
			name:   "Transition",
			out:    out,
			grid:   g,
			params: []*param.Parameter{speed, color1, color2, mode},
			speed:  speed,
		},
		color1: color1,
		color2: color2,
		mode:   mode,
		dir:    1,
	}, nil
}

func (t *Transition) Start() {
	t.restart()
	t.phase = 0
	t.dir = 1
	t.hue1 = int32(strip.PaletteHue(t.color1.Value()))
	t.hue2 = int32(strip.PaletteHue(t.color2.Value()))
}

func (t *Transition) Tick(elapsed time.Duration) {
	if !t.due(elapsed) {
		return
	}
	h := lerpHue(t.hue1, t.hue2, t.phase, phaseMax)
	t.out.SetAllHSV(strip.HSV{H: h, S: 255, V: 255})
	_ = t.out.Show()
	t.step()
}

func (t *Transition) step() {
	if t.mode.Value() == modeRepeat {
		t.phase++
		if t.phase > phaseMax {
			t.phase = 0
		}
		return
	}
	t.phase += t.dir
	if t.phase >= phaseMax {
		t.phase = phaseMax
		t.dir = -1
	} else if t.phase <= 0 {
		t.phase = 0
		t.dir = 1
	}
}

// lerpHue interpolates linearly between two hue positions.
func lerpHue(h1, h2 int32, num, den int) uint16 {
	if den <= 0 {
		return uint16(h1)
	}
	return uint16(h1 + (h2-h1)*int32(num)/int32(den))
}
