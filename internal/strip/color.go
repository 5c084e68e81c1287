package strip

import "math"

// RGB is an 8-bit-per-channel pixel color.
type RGB struct {
	R, G, B uint8
}

// HSV is a hue/saturation/value triple on the 16-bit hue wheel the
// palette parameters are defined on.
type HSV struct {
	H uint16
	S uint8
	V uint8
}

// paletteSize is the number of palette positions exposed by the color
// parameters (0..59).
const paletteSize = 60

// PaletteHue maps a palette index 0..59 linearly onto the hue wheel.
func PaletteHue(index int) uint16 {
	if index < 0 {
		index = 0
	}
	if index >= paletteSize {
		index = paletteSize - 1
	}
	return uint16(index * 65536 / paletteSize)
}

// RGB converts the triple to RGB with integer sextant math.
func (c HSV) RGB() RGB {
	if c.S == 0 {
		return RGB{c.V, c.V, c.V}
	}
	h := uint32(c.H)
	region := h / 10923 // sextant width 65536/6, region 0..5
	rem := (h - region*10923) * 6

	v := uint64(c.V)
	s := uint64(c.S)
	p := uint8(v * (255 - s) / 255)
	q := uint8(v * (255*65536 - s*uint64(rem)) / (255 * 65536))
	t := uint8(v * (255*65536 - s*uint64(65536-rem)) / (255 * 65536))

	switch region {
	case 0:
		return RGB{c.V, t, p}
	case 1:
		return RGB{q, c.V, p}
	case 2:
		return RGB{p, c.V, t}
	case 3:
		return RGB{p, q, c.V}
	case 4:
		return RGB{t, p, c.V}
	default:
		return RGB{c.V, p, q}
	}
}

// gamma8 linearizes perceived brightness on WS2812-class LEDs.
var gamma8 [256]uint8

func init() {
	for i := range gamma8 {
		gamma8[i] = uint8(math.Pow(float64(i)/255.0, 2.6)*255.0 + 0.5)
	}
}

// Gamma applies the strip's gamma curve to each channel.
func Gamma(c RGB) RGB {
	return RGB{gamma8[c.R], gamma8[c.G], gamma8[c.B]}
}
