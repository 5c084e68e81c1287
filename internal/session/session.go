// Package session is the menu state machine: it turns click and dial
// events into pattern selection, parameter editing, and playback, and
// forwards ticks to the running pattern.
package session

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/effectbox/ledmatrix/internal/display"
	"github.com/effectbox/ledmatrix/internal/input"
	"github.com/effectbox/ledmatrix/internal/param"
	"github.com/effectbox/ledmatrix/internal/pattern"
)

// State enumerates the controller states. There is no terminal state;
// the device runs until power-off.
type State int

const (
	StateInit State = iota
	StateProgramSelect
	StateParameterSetting
	StateAwaitingStart
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateProgramSelect:
		return "program-select"
	case StateParameterSetting:
		return "parameter-setting"
	case StateAwaitingStart:
		return "awaiting-start"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Controller owns the catalog selection and drives pattern lifecycle
// from input events. All methods run on the single poll-loop goroutine.
type Controller struct {
	cat   *pattern.Catalog
	disp  display.Display
	log   zerolog.Logger
	state State
}

func New(cat *pattern.Catalog, disp display.Display, log zerolog.Logger) *Controller {
	return &Controller{cat: cat, disp: disp, log: log}
}

func (c *Controller) State() State { return c.state }

// SelectedIndex returns the catalog position of the active pattern.
func (c *Controller) SelectedIndex() int { return c.cat.SelectedIndex() }

// Selected returns the active pattern.
func (c *Controller) Selected() pattern.Pattern { return c.cat.Selected() }

// Handle dispatches one logical input event.
func (c *Controller) Handle(ev input.Event) {
	switch ev {
	case input.Click:
		c.Click()
	case input.DialForward:
		c.Dial(param.Forward)
	case input.DialBackward:
		c.Dial(param.Backward)
	}
}

// Click advances the menu flow.
func (c *Controller) Click() {
	p := c.cat.Selected()
	switch c.state {
	case StateInit, StateRunning:
		p.Reset()
		c.to(StateProgramSelect)
		c.showSelection()
	case StateProgramSelect:
		p.EnterConfig()
		c.to(StateParameterSetting)
		c.showParam(p)
	case StateParameterSetting:
		if p.AdvanceCursor() {
			c.showParam(p)
			return
		}
		p.ExitConfig()
		c.to(StateAwaitingStart)
		_ = c.disp.ShowMessage("Click to start", true)
	case StateAwaitingStart:
		p.CursorToFirst()
		p.Start()
		c.to(StateRunning)
		_ = c.disp.ShowMessage("Click to stop", false)
	}
}

// Dial moves the selection or steps the parameter under edit. Ignored
// in Init and AwaitingStart.
func (c *Controller) Dial(d param.Direction) {
	switch c.state {
	case StateProgramSelect:
		if d == param.Forward {
			c.cat.Next()
		} else {
			c.cat.Prev()
		}
		c.showSelection()
	case StateParameterSetting, StateRunning:
		p := c.cat.Selected()
		p.StepParam(d)
		c.showParam(p)
	}
}

// Tick forwards elapsed time to the active pattern while running.
func (c *Controller) Tick(elapsed time.Duration) {
	if c.state == StateRunning {
		c.cat.Selected().Tick(elapsed)
	}
}

func (c *Controller) to(next State) {
	c.log.Debug().
		Stringer("from", c.state).
		Stringer("to", next).
		Str("pattern", c.cat.Selected().Name()).
		Msg("session transition")
	c.state = next
}

func (c *Controller) showSelection() {
	_ = c.disp.ShowMessage(c.cat.Selected().Name(), true)
}

func (c *Controller) showParam(p pattern.Pattern) {
	cp := p.CurrentParam()
	if cp == nil {
		_ = c.disp.ShowMessage(p.Name(), true)
		return
	}
	_ = c.disp.ShowMenu(p.Name(), cp.Name(), cp.DisplayText())
}
