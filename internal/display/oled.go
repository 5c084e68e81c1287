package display

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	lineHeight = 16
	textAscent = 12
	leftMargin = 2
)

// OLED renders the menu on an SSD1306 over I²C with a fixed 7x13 face.
// Emphasis is drawn by inverting the band behind the text.
type OLED struct {
	dev *ssd1306.Dev
	img *image1bit.VerticalLSB
}

// NewOLED opens the named I²C bus (empty means first available) and
// initializes the panel at its default address.
func NewOLED(busName string) (*OLED, error) {
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("init ssd1306: %w", err)
	}
	return &OLED{
		dev: dev,
		img: image1bit.NewVerticalLSB(dev.Bounds()),
	}, nil
}

func (d *OLED) clear() {
	draw.Draw(d.img, d.img.Bounds(), &image.Uniform{image1bit.Off}, image.Point{}, draw.Src)
}

// line draws one text line at the given row, inverting the band when
// emphasized.
func (d *OLED) line(row int, text string, inverted bool) {
	top := row * lineHeight
	fg, bg := image1bit.On, image1bit.Off
	if inverted {
		fg, bg = image1bit.Off, image1bit.On
	}
	band := image.Rect(0, top, d.img.Bounds().Dx(), top+lineHeight)
	draw.Draw(d.img, band, &image.Uniform{bg}, image.Point{}, draw.Src)
	dr := font.Drawer{
		Dst:  d.img,
		Src:  &image.Uniform{fg},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(leftMargin, top+textAscent),
	}
	dr.DrawString(text)
}

func (d *OLED) flush() error {
	return d.dev.Draw(d.dev.Bounds(), d.img, image.Point{})
}

func (d *OLED) ShowMessage(text string, emphasized bool) error {
	d.clear()
	d.line(0, text, emphasized)
	return d.flush()
}

func (d *OLED) ShowMenu(menu, param, value string) error {
	d.clear()
	d.line(0, menu, false)
	d.line(1, param, false)
	d.line(2, value, true)
	return d.flush()
}

// Halt blanks the panel.
func (d *OLED) Halt() error { return d.dev.Halt() }
