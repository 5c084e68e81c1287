package session

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/effectbox/ledmatrix/internal/input"
	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/pattern"
	"github.com/effectbox/ledmatrix/internal/strip"
)

var testGrid = layout.Grid{Rows: 4, Cols: 6}

// menuRecorder captures everything the controller displays.
type menuRecorder struct {
	messages []string
	menus    [][3]string
}

func (r *menuRecorder) ShowMessage(text string, emphasized bool) error {
	r.messages = append(r.messages, text)
	return nil
}

func (r *menuRecorder) ShowMenu(menu, param, value string) error {
	r.menus = append(r.menus, [3]string{menu, param, value})
	return nil
}

func (r *menuRecorder) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func (r *menuRecorder) lastMenu() [3]string {
	if len(r.menus) == 0 {
		return [3]string{}
	}
	return r.menus[len(r.menus)-1]
}

func newTestController(t *testing.T) (*Controller, *strip.Memory, *menuRecorder) {
	t.Helper()
	out := strip.NewMemory(testGrid)
	rec := &menuRecorder{}
	cat, err := pattern.NewCatalog(out, rec, testGrid)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return New(cat, rec, zerolog.Nop()), out, rec
}

func TestFullMenuWalk(t *testing.T) {
	c, _, rec := newTestController(t)
	if c.State() != StateInit {
		t.Fatal("controller must start in init")
	}

	c.Click()
	if c.State() != StateProgramSelect || c.SelectedIndex() != 0 {
		t.Fatalf("first click must enter program select at position 0, got %v/%d", c.State(), c.SelectedIndex())
	}
	if rec.lastMessage() != "White" {
		t.Fatalf("selection menu must show the pattern name, got %q", rec.lastMessage())
	}

	c.Handle(input.DialForward)
	if c.SelectedIndex() != 1 {
		t.Fatalf("dial must move the selection, got %d", c.SelectedIndex())
	}
	if rec.lastMessage() != "Monochrome" {
		t.Fatalf("selection menu stale: %q", rec.lastMessage())
	}

	c.Click()
	if c.State() != StateParameterSetting {
		t.Fatalf("expected parameter setting, got %v", c.State())
	}
	if !c.Selected().InConfig() {
		t.Fatal("pattern must be in configuration view")
	}
	if m := rec.lastMenu(); m[0] != "Monochrome" || m[1] != "Color" {
		t.Fatalf("menu must show the first parameter, got %v", m)
	}

	// Monochrome has two parameters: exactly two clicks reach the
	// start prompt
	c.Click()
	if c.State() != StateParameterSetting {
		t.Fatalf("one parameter left, got %v", c.State())
	}
	if m := rec.lastMenu(); m[1] != "Level" || m[2] != "50%" {
		t.Fatalf("menu must show the second parameter, got %v", m)
	}
	c.Click()
	if c.State() != StateAwaitingStart {
		t.Fatalf("expected awaiting start, got %v", c.State())
	}
	if c.Selected().InConfig() {
		t.Fatal("leaving parameter setting must exit configuration view")
	}
	if rec.lastMessage() != "Click to start" {
		t.Fatalf("expected start prompt, got %q", rec.lastMessage())
	}

	c.Click()
	if c.State() != StateRunning {
		t.Fatalf("expected running, got %v", c.State())
	}
	if c.Selected().CurrentParam().Name() != "Color" {
		t.Fatal("start must rewind the cursor to the first parameter")
	}

	c.Click()
	if c.State() != StateProgramSelect {
		t.Fatalf("click while running must return to program select, got %v", c.State())
	}
}

func TestDialIgnoredInInitAndAwaitingStart(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Dial(0)
	if c.State() != StateInit || len(rec.messages)+len(rec.menus) != 0 {
		t.Fatal("dial in init must do nothing")
	}

	// walk to awaiting-start on White (one parameter)
	c.Click()
	c.Click()
	c.Click()
	if c.State() != StateAwaitingStart {
		t.Fatalf("setup failed, state %v", c.State())
	}
	before := c.SelectedIndex()
	c.Handle(input.DialForward)
	if c.SelectedIndex() != before || c.State() != StateAwaitingStart {
		t.Fatal("dial in awaiting-start must do nothing")
	}
}

func TestTickOnlyRendersWhileRunning(t *testing.T) {
	c, out, _ := newTestController(t)
	c.Tick(time.Millisecond)
	if out.FrameID() != 0 {
		t.Fatal("tick must be ignored before running")
	}

	c.Click() // program select
	c.Click() // parameter setting (White)
	c.Click() // awaiting start
	c.Tick(2 * time.Millisecond)
	if out.FrameID() != 0 {
		t.Fatal("tick must be ignored while awaiting start")
	}

	c.Click() // running
	c.Tick(3 * time.Millisecond)
	if out.FrameID() == 0 {
		t.Fatal("running pattern must render on tick")
	}
}

func TestDialWhileRunningEditsTheFirstParameter(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Click() // program select (White)
	c.Click() // parameter setting
	c.Click() // awaiting start
	c.Click() // running

	c.Handle(input.DialForward)
	m := rec.lastMenu()
	if m[0] != "White" || m[1] != "Level" || m[2] != "51%" {
		t.Fatalf("dial while running must step and show the parameter, got %v", m)
	}
}

func TestSwitchingSelectionDoesNotMutateParameters(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Click()                 // program select
	c.Click()                 // configure White
	c.Handle(input.DialForward) // level 51
	c.Click()                 // awaiting start
	c.Click()                 // running
	c.Click()                 // back to program select (resets cursor, not values)

	c.Handle(input.DialForward) // select Monochrome
	c.Handle(input.DialBackward) // back to White
	white := c.Selected()
	if white.Params()[0].Value() != 51 {
		t.Fatalf("selection changes must not touch parameter values, got %d", white.Params()[0].Value())
	}
}
