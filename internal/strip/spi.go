package strip

import (
	"fmt"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

// DefaultSPIFreq suits the 3x bit-expansion scheme nrzled uses for
// WS2812 timing.
const DefaultSPIFreq = 2500 * physic.KiloHertz

// OpenSPI opens the named SPI port (empty means first available) and
// returns a WS2812 drawer for count pixels.
func OpenSPI(dev string, count int, freq physic.Frequency) (display.Drawer, error) {
	if freq <= 0 {
		freq = DefaultSPIFreq
	}
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("open spi port: %w", err)
	}
	opts := nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      freq,
	}
	d, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("init nrzled: %w", err)
	}
	return d, nil
}

// Terminal returns an ANSI terminal drawer, the fallback when no SPI
// port is present.
func Terminal(count int) display.Drawer {
	return screen.New(count)
}
