// Package pattern holds the five lighting algorithms, the render pacing
// policy, and the fixed catalog the menu selects from. Every variant
// implements the same small contract; the session controller never cares
// which one is active.
package pattern

import (
	"time"

	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/param"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// Kind identifies a pattern family.
type Kind int

const (
	KindWhite Kind = iota
	KindMonochrome
	KindTransition
	KindGradient
	KindEffects
)

// Pattern is one selectable lighting algorithm with its parameter set.
//
// The cursor walks the parameter list during configuration; once it moves
// past the last parameter the configuration is complete. Start rebuilds
// any internal render state from the current parameter values without
// touching the values themselves. Tick is called once per poll-loop tick
// while running and decides internally (via ShouldRender) whether to
// produce a frame.
type Pattern interface {
	Kind() Kind
	Name() string

	Reset()
	EnterConfig()
	ExitConfig()
	InConfig() bool

	AdvanceCursor() bool
	CursorToFirst()
	StepParam(d param.Direction)
	CurrentParam() *param.Parameter
	Params() []*param.Parameter

	Start()
	Tick(elapsed time.Duration)
	Speed() int
}

// base carries the state every variant shares. Variants embed it and add
// their own frame state on top.
type base struct {
	kind Kind
	name string
	out  strip.Output
	grid layout.Grid

	params []*param.Parameter
	speed  *param.Parameter // nil means the pattern renders continuously

	cursor       int
	inConfig     bool
	renderedOnce bool
	lastRender   time.Duration
}

func (b *base) Kind() Kind                  { return b.kind }
func (b *base) Name() string                { return b.name }
func (b *base) Params() []*param.Parameter  { return b.params }
func (b *base) EnterConfig()                { b.inConfig = true }
func (b *base) ExitConfig()                 { b.inConfig = false }
func (b *base) InConfig() bool              { return b.inConfig }
func (b *base) CursorToFirst()              { b.cursor = 0 }

// AdvanceCursor moves to the next parameter. It reports whether a next
// parameter existed; false means configuration is complete.
func (b *base) AdvanceCursor() bool {
	if b.cursor < len(b.params) {
		b.cursor++
	}
	return b.cursor < len(b.params)
}

// CurrentParam returns the parameter under the cursor, or nil once the
// cursor is past the end.
func (b *base) CurrentParam() *param.Parameter {
	if b.cursor >= len(b.params) {
		return nil
	}
	return b.params[b.cursor]
}

// StepParam forwards a dial step to the parameter under the cursor.
func (b *base) StepParam(d param.Direction) {
	if p := b.CurrentParam(); p != nil {
		p.Step(d)
	}
}

// Speed reports the pattern's speed parameter, or Continuous for
// patterns whose frame is a static fill.
func (b *base) Speed() int {
	if b.speed == nil {
		return Continuous
	}
	return b.speed.Value()
}

// Reset returns the pattern to its just-constructed configuration state
// and drives the matrix dark. Parameter values are left alone.
func (b *base) Reset() {
	b.cursor = 0
	b.inConfig = false
	b.restart()
	_ = strip.Blackout(b.out)
}

// restart clears the render bookkeeping; every variant's Start calls it.
func (b *base) restart() {
	b.renderedOnce = false
	b.lastRender = 0
}

// due consults the pacing policy and, when a frame is due, records the
// render time.
func (b *base) due(elapsed time.Duration) bool {
	if !ShouldRender(b.Speed(), b.renderedOnce, elapsed-b.lastRender) {
		return false
	}
	b.lastRender = elapsed
	b.renderedOnce = true
	return true
}
