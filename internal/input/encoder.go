package input

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Encoder turns a quadrature rotary encoder with a push button into
// logical events. One event per detent; the hardware may pulse several
// times per detent, which the level comparison absorbs.
type Encoder struct {
	a, b, btn gpio.PinIO
	events    chan Event
	done      chan struct{}
	debounce  time.Duration
}

// NewEncoder looks up the three pins by name (e.g. "GPIO17") and starts
// watching edges.
func NewEncoder(pinA, pinB, pinButton string, debounce time.Duration) (*Encoder, error) {
	a := gpioreg.ByName(pinA)
	if a == nil {
		return nil, fmt.Errorf("no such pin: %s", pinA)
	}
	b := gpioreg.ByName(pinB)
	if b == nil {
		return nil, fmt.Errorf("no such pin: %s", pinB)
	}
	btn := gpioreg.ByName(pinButton)
	if btn == nil {
		return nil, fmt.Errorf("no such pin: %s", pinButton)
	}
	if err := a.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("pin %s: %w", pinA, err)
	}
	if err := b.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("pin %s: %w", pinB, err)
	}
	if err := btn.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("pin %s: %w", pinButton, err)
	}
	if debounce <= 0 {
		debounce = 5 * time.Millisecond
	}
	e := &Encoder{
		a:        a,
		b:        b,
		btn:      btn,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
		debounce: debounce,
	}
	go e.watchDial()
	go e.watchButton()
	return e, nil
}

func (e *Encoder) watchDial() {
	var last time.Time
	for {
		select {
		case <-e.done:
			return
		default:
		}
		if !e.a.WaitForEdge(time.Second) {
			continue
		}
		now := time.Now()
		if now.Sub(last) < e.debounce {
			continue
		}
		last = now
		// falling edge on A: B's level tells the turn direction
		ev := DialForward
		if e.b.Read() == gpio.Low {
			ev = DialBackward
		}
		e.emit(ev)
	}
}

func (e *Encoder) watchButton() {
	var last time.Time
	for {
		select {
		case <-e.done:
			return
		default:
		}
		if !e.btn.WaitForEdge(time.Second) {
			continue
		}
		now := time.Now()
		if now.Sub(last) < e.debounce*10 {
			continue
		}
		last = now
		e.emit(Click)
	}
}

func (e *Encoder) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
		// poll loop stalled; drop rather than block the watcher
	}
}

func (e *Encoder) Events() <-chan Event { return e.events }

func (e *Encoder) Close() error {
	close(e.done)
	if err := e.a.Halt(); err != nil {
		return err
	}
	if err := e.b.Halt(); err != nil {
		return err
	}
	return e.btn.Halt()
}
