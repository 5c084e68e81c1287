// Package input defines the three logical events the front panel
// produces and the adapters that produce them. Events arrive already
// debounced and resolved into discrete steps.
package input

// Event is one logical input action.
type Event int

const (
	Click Event = iota
	DialForward
	DialBackward
)

func (e Event) String() string {
	switch e {
	case Click:
		return "click"
	case DialForward:
		return "dial-forward"
	case DialBackward:
		return "dial-backward"
	default:
		return "unknown"
	}
}

// Source produces input events. The poll loop drains the channel in
// arrival order.
type Source interface {
	Events() <-chan Event
	Close() error
}

// Fan merges several sources (the encoder plus the remote-control
// socket) into one ordered stream.
type Fan struct {
	out     chan Event
	sources []Source
	done    chan struct{}
}

// NewFan starts forwarding from all sources immediately.
func NewFan(sources ...Source) *Fan {
	f := &Fan{
		out:     make(chan Event, 16),
		sources: sources,
		done:    make(chan struct{}),
	}
	for _, s := range sources {
		go f.forward(s)
	}
	return f
}

func (f *Fan) forward(s Source) {
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return
			}
			select {
			case f.out <- ev:
			case <-f.done:
				return
			}
		case <-f.done:
			return
		}
	}
}

func (f *Fan) Events() <-chan Event { return f.out }

func (f *Fan) Close() error {
	close(f.done)
	var first error
	for _, s := range f.sources {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
