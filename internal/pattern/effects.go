package pattern

import (
	"math/rand"
	"time"

	"github.com/effectbox/ledmatrix/internal/display"
	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/param"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// Effect sub-modes, matched against the effect parameter's index. Only
// Raindrops is implemented; the others show a placeholder message.
const (
	effectRaindrops = iota
	effectMatrix
	effectStrobo
	effectFire
)

// Raindrops tuning. The decay keeps 15/16 of a pixel's brightness per
// frame and a new drop fires after a countdown drawn uniformly from
// [1,100]. Values tuned on the original hardware; keep them literal.
const (
	decayKeepNum   = 15
	decayKeepDen   = 16
	retriggerBound = 100
)

// Effects hosts the stochastic animations. Per-pixel hue/brightness
// state lives on the instance and is rebuilt in Start.
type Effects struct {
	base
	disp    display.Display
	color1  *param.Parameter
	color2  *param.Parameter
	effectP *param.Parameter

	rng       *rand.Rand
	hue       []uint16
	bright    []uint8
	countdown int
	wheel     uint8 // slowly rotating hue counter for new drops
	hue1      int32
	hue2      int32
}

func NewEffects(out strip.Output, disp display.Display, g layout.Grid) (*Effects, error) {
	speed := param.Number("Speed", "", 5, Frozen, Continuous, false)
	color1 := param.Number("Color 1", "", 0, 0, 59, true)
	color2 := param.Number("Color 2", "", 30, 0, 59, true)
	effectP, err := param.Enum("Effect", effectRaindrops,
		"Raindrops", "Matrix", "Strobo", "Fire")
	if err != nil {
		return nil, err
	}
	return &Effects{
		base: base{
			kind:   KindEffects,
			name:   "Effects",
			out:    out,
			grid:   g,
			params: []*param.Parameter{speed, color1, color2, effectP},
			speed:  speed,
		},
		disp:    disp,
		color1:  color1,
		color2:  color2,
		effectP: effectP,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		hue:     make([]uint16, g.Count()),
		bright:  make([]uint8, g.Count()),
	}, nil
}

func (e *Effects) Start() {
	e.restart()
	e.hue1 = int32(strip.PaletteHue(e.color1.Value()))
	e.hue2 = int32(strip.PaletteHue(e.color2.Value()))
	for i := range e.bright {
		e.bright[i] = 0
		e.hue[i] = 0
	}
	e.countdown = 1 + e.rng.Intn(retriggerBound)
	e.wheel = 0
}

func (e *Effects) Tick(elapsed time.Duration) {
	if !e.due(elapsed) {
		return
	}
	if mode := e.effectP.Value(); mode != effectRaindrops {
		// Deliberate placeholder, not a failure: the option is
		// selectable but has no algorithm yet.
		_ = e.disp.ShowMessage(e.effectP.DisplayText()+" not implemented", false)
		return
	}
	e.raindropsFrame()
}

func (e *Effects) raindropsFrame() {
	// fade everything, then maybe fire a new drop
	for i := range e.bright {
		e.bright[i] = uint8(uint16(e.bright[i]) * decayKeepNum / decayKeepDen)
	}
	e.countdown--
	if e.countdown <= 0 {
		e.countdown = 1 + e.rng.Intn(retriggerBound)
		i := e.rng.Intn(len(e.bright))
		e.bright[i] = 255
		e.hue[i] = lerpHue(e.hue1, e.hue2, int(e.wheel), 255)
	}
	e.wheel++

	for i := range e.bright {
		e.out.SetPixelHSV(i, strip.HSV{H: e.hue[i], S: 255, V: e.bright[i]})
	}
	_ = e.out.Show()
}
