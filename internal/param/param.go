// Package param holds the tunable values a pattern exposes on the front
// panel: plain bounded integers and enumerated option lists. Stepping is
// total; a parameter either clamps or wraps at its bounds and never leaves
// them.
package param

import (
	"errors"
	"strconv"
)

// Direction selects which way a dial step moves a parameter.
type Direction int

const (
	Forward Direction = iota
	Backward
)

type kind int

const (
	numeric kind = iota
	enumerated
)

// Parameter is a single tunable quantity owned by one pattern.
type Parameter struct {
	name    string
	unit    string
	kind    kind
	value   int
	initial int
	min     int
	max     int
	wrap    bool
	options []string
}

// Number returns a numeric parameter with an inclusive [min,max] range.
// The initial value is clamped into range.
func Number(name, unit string, initial, min, max int, wrap bool) *Parameter {
	if min > max {
		min, max = max, min
	}
	p := &Parameter{
		name: name,
		unit: unit,
		kind: numeric,
		min:  min,
		max:  max,
		wrap: wrap,
	}
	p.value = clamp(initial, min, max)
	p.initial = p.value
	return p
}

// Enum returns an enumerated parameter cycling over the given option
// labels. Enumerated parameters always wrap. An empty option list is a
// construction error.
func Enum(name string, initial int, options ...string) (*Parameter, error) {
	if len(options) == 0 {
		return nil, errors.New("enum parameter needs at least one option")
	}
	p := &Parameter{
		name:    name,
		kind:    enumerated,
		min:     0,
		max:     len(options) - 1,
		wrap:    true,
		options: options,
	}
	p.value = clamp(initial, p.min, p.max)
	p.initial = p.value
	return p, nil
}

// Name returns the display name.
func (p *Parameter) Name() string { return p.name }

// Value returns the raw integer value: the number itself for numeric
// parameters, the option index for enumerated ones.
func (p *Parameter) Value() int { return p.value }

// DisplayText renders the value for the menu: "<int><unit>" for numeric,
// the option label for enumerated.
func (p *Parameter) DisplayText() string {
	if p.kind == enumerated {
		return p.options[p.value]
	}
	return strconv.Itoa(p.value) + p.unit
}

// Advance steps the value up by one, wrapping to min at the top bound if
// the parameter wraps, otherwise staying put.
func (p *Parameter) Advance() {
	if p.value < p.max {
		p.value++
	} else if p.wrap {
		p.value = p.min
	}
}

// Retreat steps the value down by one, wrapping to max at the bottom
// bound if the parameter wraps.
func (p *Parameter) Retreat() {
	if p.value > p.min {
		p.value--
	} else if p.wrap {
		p.value = p.max
	}
}

// Step applies Advance or Retreat.
func (p *Parameter) Step(d Direction) {
	if d == Backward {
		p.Retreat()
		return
	}
	p.Advance()
}

// SetValue forces the value, clamped into range. Used by remote control.
func (p *Parameter) SetValue(v int) { p.value = clamp(v, p.min, p.max) }

// Reset restores the construction-time initial value.
func (p *Parameter) Reset() { p.value = p.initial }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
