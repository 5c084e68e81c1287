package pattern

import "time"

// Speed parameter bounds. Frozen renders exactly once per Start;
// Continuous renders every tick. In between, the refresh period halves
// with every speed step, which reads as a roughly linear speed feel.
const (
	Frozen     = 0
	Continuous = 10
)

// ShouldRender is the pacing policy: given the pattern's speed setting,
// whether it has rendered since Start, and the time since its last
// render, decide whether this tick produces a frame. Pure; the caller
// updates its own last-render timestamp when it does render.
func ShouldRender(speed int, renderedOnce bool, sinceLast time.Duration) bool {
	switch {
	case speed <= Frozen:
		return !renderedOnce
	case speed >= Continuous:
		return true
	default:
		period := time.Duration(1<<(Continuous-speed)) * time.Millisecond
		return sinceLast > period
	}
}
