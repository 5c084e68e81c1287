package pattern

import (
	"math/rand"
	"time"

	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/param"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// Gradient layouts, matched against the layout parameter's index.
const (
	layoutRows = iota
	layoutColumns
	layoutColumnsSnake
	layoutPixels
	layoutRandom
)

// hueStep is the global hue-offset increment applied every frame, giving
// the whole gradient a slow rotation around the wheel.
const hueStep = 256

// Gradient spreads the hue ramp between two palette colors across the
// matrix by row, column, serpentine column, linear position, or a random
// permutation fixed at Start, then slowly rotates the whole ramp.
type Gradient struct {
	base
	color1  *param.Parameter
	color2  *param.Parameter
	layoutP *param.Parameter

	rng    *rand.Rand
	hue1   int32
	hue2   int32
	hueAt  []uint16 // per-pixel base hue for the Random layout
	offset uint16
}

func NewGradient(out strip.Output, g layout.Grid) (*Gradient, error) {
	speed := param.Number("Speed", "", 5, Frozen, Continuous, false)
	color1 := param.Number("Color 1", "", 0, 0, 59, true)
	color2 := param.Number("Color 2", "", 30, 0, 59, true)
	layoutP, err := param.Enum("Layout", layoutRows,
		"Rows", "Columns", "Columns snake", "Pixels", "Random")
	if err != nil {
		return nil, err
	}
	return &Gradient{
		base: base{
			kind:   KindGradient,
			name:   "Gradient",
			out:    out,
			grid:   g,
			params: []*param.Parameter{speed, color1, color2, layoutP},
			speed:  speed,
		},
		color1:  color1,
		color2:  color2,
		layoutP: layoutP,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		hueAt:   make([]uint16, g.Count()),
	}, nil
}

func (gr *Gradient) Start() {
	gr.restart()
	gr.offset = 0
	gr.hue1 = int32(strip.PaletteHue(gr.color1.Value()))
	gr.hue2 = int32(strip.PaletteHue(gr.color2.Value()))
	if gr.layoutP.Value() == layoutRandom {
		gr.shuffleHues()
	}
}

// shuffleHues assigns each pixel a hue interpolated across the full
// pixel range by its rank in a fresh uniform permutation.
func (gr *Gradient) shuffleHues() {
	n := gr.grid.Count()
	for rank, pix := range gr.rng.Perm(n) {
		gr.hueAt[pix] = lerpHue(gr.hue1, gr.hue2, rank, n-1)
	}
}

func (gr *Gradient) Tick(elapsed time.Duration) {
	if !gr.due(elapsed) {
		return
	}
	n := gr.grid.Count()
	mode := gr.layoutP.Value()
	for i := 0; i < n; i++ {
		h := gr.baseHue(mode, i, n)
		gr.out.SetPixelHSV(i, strip.HSV{H: h + gr.offset, S: 255, V: 255})
	}
	_ = gr.out.Show()
	gr.offset += hueStep
}

func (gr *Gradient) baseHue(mode, i, n int) uint16 {
	switch mode {
	case layoutColumns:
		return lerpHue(gr.hue1, gr.hue2, gr.grid.ColOf(i), gr.grid.Cols-1)
	case layoutColumnsSnake:
		row := gr.grid.RowOf(i)
		col := gr.grid.SerpentineCol(row, gr.grid.ColOf(i))
		return lerpHue(gr.hue1, gr.hue2, col, gr.grid.Cols-1)
	case layoutPixels:
		return lerpHue(gr.hue1, gr.hue2, i, n-1)
	case layoutRandom:
		return gr.hueAt[i]
	default: // rows
		return lerpHue(gr.hue1, gr.hue2, gr.grid.RowOf(i), gr.grid.Rows-1)
	}
}
