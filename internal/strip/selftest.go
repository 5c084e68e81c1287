package strip

import "time"

// SelfTest walks a single white pixel down the whole chain, then fills
// each channel in turn. Run at power-on to verify wiring and color order
// before the menu comes up.
func SelfTest(o Output, step time.Duration) error {
	n := o.Count()
	for i := 0; i < n; i++ {
		o.SetAll(RGB{})
		o.SetPixel(i, RGB{255, 255, 255})
		if err := o.Show(); err != nil {
			return err
		}
		time.Sleep(step)
	}
	for _, c := range []RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		o.SetAll(c)
		if err := o.Show(); err != nil {
			return err
		}
		time.Sleep(step * 10)
	}
	return Blackout(o)
}
