// Package strip is the pixel-output collaborator: a buffered frame over
// the logical grid, pushed atomically to a WS2812 chain (or a stand-in)
// on Show. Hue conversion and gamma correction happen here, not in the
// patterns.
package strip

import (
	"image"

	"periph.io/x/conn/v3/display"

	"github.com/effectbox/ledmatrix/internal/layout"
)

// Output is what the patterns render into. SetAll and SetPixel take raw
// RGB; the HSV variants convert on the hue wheel and gamma-correct. Show
// pushes the whole frame at once.
type Output interface {
	Count() int
	SetAll(c RGB)
	SetAllHSV(c HSV)
	SetPixel(i int, c RGB)
	SetPixelHSV(i int, c HSV)
	Show() error
}

// frame is the shared buffered-grid behavior behind Strip and Memory.
type frame struct {
	grid layout.Grid
	buf  []RGB
}

func newFrame(g layout.Grid) frame {
	return frame{grid: g, buf: make([]RGB, g.Count())}
}

func (f *frame) Count() int { return len(f.buf) }

func (f *frame) SetAll(c RGB) {
	for i := range f.buf {
		f.buf[i] = c
	}
}

func (f *frame) SetAllHSV(c HSV) { f.SetAll(Gamma(c.RGB())) }

func (f *frame) SetPixel(i int, c RGB) {
	if i < 0 || i >= len(f.buf) {
		return
	}
	f.buf[i] = c
}

func (f *frame) SetPixelHSV(i int, c HSV) { f.SetPixel(i, Gamma(c.RGB())) }

// Strip drives a physical chain through a periph display.Drawer (nrzled
// over SPI, or the terminal stand-in).
type Strip struct {
	frame
	wiring     layout.Wiring
	drawer     display.Drawer
	img        *image.NRGBA
	brightness float64
}

// New wraps a drawer. brightness scales the whole frame on Show, 0..1;
// values outside that range mean full scale.
func New(d display.Drawer, g layout.Grid, w layout.Wiring, brightness float64) *Strip {
	if brightness <= 0 || brightness > 1 {
		brightness = 1
	}
	return &Strip{
		frame:      newFrame(g),
		wiring:     w,
		drawer:     d,
		img:        image.NewNRGBA(image.Rect(0, 0, g.Count(), 1)),
		brightness: brightness,
	}
}

// Show maps the logical frame through the wiring and pushes it to the
// drawer in one draw call.
func (s *Strip) Show() error {
	for i := range s.buf {
		phys := s.wiring.StripIndex(s.grid, i)
		off := phys * 4
		c := s.buf[i]
		s.img.Pix[off+0] = scale8(c.R, s.brightness)
		s.img.Pix[off+1] = scale8(c.G, s.brightness)
		s.img.Pix[off+2] = scale8(c.B, s.brightness)
		s.img.Pix[off+3] = 0xFF
	}
	return s.drawer.Draw(s.drawer.Bounds(), s.img, image.Point{})
}

// Blackout drives every pixel dark and flushes.
func Blackout(o Output) error {
	o.SetAll(RGB{})
	return o.Show()
}

func scale8(v uint8, s float64) uint8 {
	if s >= 1 {
		return v
	}
	return uint8(float64(v)*s + 0.5)
}

// Tee fans writes out to several outputs, e.g. hardware plus the
// websocket preview mirror. Show errors surface from the first output.
type Tee struct {
	outs []Output
}

func NewTee(outs ...Output) *Tee { return &Tee{outs: outs} }

func (t *Tee) Count() int {
	if len(t.outs) == 0 {
		return 0
	}
	return t.outs[0].Count()
}

func (t *Tee) SetAll(c RGB) {
	for _, o := range t.outs {
		o.SetAll(c)
	}
}

func (t *Tee) SetAllHSV(c HSV) {
	for _, o := range t.outs {
		o.SetAllHSV(c)
	}
}

func (t *Tee) SetPixel(i int, c RGB) {
	for _, o := range t.outs {
		o.SetPixel(i, c)
	}
}

func (t *Tee) SetPixelHSV(i int, c HSV) {
	for _, o := range t.outs {
		o.SetPixelHSV(i, c)
	}
}

func (t *Tee) Show() error {
	var first error
	for _, o := range t.outs {
		if err := o.Show(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
