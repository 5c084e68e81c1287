package pattern

import (
	"testing"
	"time"

	"github.com/effectbox/ledmatrix/internal/strip"
)

func newTestTransition(t *testing.T) (*Transition, *strip.Memory) {
	t.Helper()
	out := strip.NewMemory(testGrid)
	tr, err := NewTransition(out, testGrid)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	tr.speed.SetValue(Continuous) // render on every tick
	return tr, out
}

func TestTransitionFirstFrameIsColor1(t *testing.T) {
	tr, out := newTestTransition(t)
	tr.Start()
	tr.Tick(time.Millisecond)
	// color1 defaults to palette 0 (red) at full value
	c := out.Pixel(0)
	if c.R != 255 || c.B != 0 {
		t.Fatalf("expected pure color1 at phase 0, got %+v", c)
	}
}

func TestTransitionRepeatWrapsPhase(t *testing.T) {
	tr, _ := newTestTransition(t)
	tr.Start()
	for i := 0; i <= phaseMax; i++ {
		tr.Tick(time.Duration(i+1) * time.Millisecond)
	}
	// 256 renders stepped the phase past the top once
	if tr.phase != 0 {
		t.Fatalf("repeat mode must wrap to phase 0, got %d", tr.phase)
	}
	if tr.dir != 1 {
		t.Fatalf("repeat mode keeps its direction, got %d", tr.dir)
	}
}

func TestTransitionReboundReversesAtBounds(t *testing.T) {
	tr, _ := newTestTransition(t)
	tr.mode.SetValue(modeRebound)
	tr.Start()

	seen := make([]int, 0, 700)
	for i := 0; i < 700; i++ {
		tr.Tick(time.Duration(i+1) * time.Millisecond)
		seen = append(seen, tr.phase)
	}
	reversals := 0
	for i := 1; i+1 < len(seen); i++ {
		if seen[i] < 0 || seen[i] > phaseMax {
			t.Fatalf("phase %d left [0,%d]", seen[i], phaseMax)
		}
		rising := seen[i] > seen[i-1]
		falling := seen[i+1] < seen[i]
		if rising && falling {
			if seen[i] != phaseMax {
				t.Fatalf("direction reversed at %d, want %d", seen[i], phaseMax)
			}
			reversals++
		}
		if !rising && !falling && seen[i] == 0 && seen[i+1] > 0 && seen[i-1] > 0 {
			reversals++
		}
	}
	if reversals < 2 {
		t.Fatalf("expected reversals at both bounds over 700 frames, saw %d", reversals)
	}
}

func TestTransitionStartResolvesHuesFromParams(t *testing.T) {
	tr, _ := newTestTransition(t)
	tr.color1.SetValue(10)
	tr.color2.SetValue(40)
	tr.Start()
	if tr.hue1 != int32(strip.PaletteHue(10)) || tr.hue2 != int32(strip.PaletteHue(40)) {
		t.Fatal("start must re-derive hues from the current color parameters")
	}
}
