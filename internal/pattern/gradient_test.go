package pattern

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/effectbox/ledmatrix/internal/strip"
)

func newTestGradient(t *testing.T) (*Gradient, *strip.Memory) {
	t.Helper()
	out := strip.NewMemory(testGrid)
	g, err := NewGradient(out, testGrid)
	if err != nil {
		t.Fatalf("gradient: %v", err)
	}
	g.rng = rand.New(rand.NewSource(42))
	g.speed.SetValue(Continuous)
	return g, out
}

func TestGradientRandomLayoutIsABijection(t *testing.T) {
	g, _ := newTestGradient(t)
	g.layoutP.SetValue(layoutRandom)
	g.Start()

	n := testGrid.Count()
	// every rank hue must appear exactly once across the pixels
	want := make([]uint16, n)
	for rank := 0; rank < n; rank++ {
		want[rank] = lerpHue(g.hue1, g.hue2, rank, n-1)
	}
	got := append([]uint16(nil), g.hueAt...)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("assigned hues are not the rank ramp: got[%d]=%d want %d", i, got[i], want[i])
		}
	}
	// and the ramp itself is monotone in rank order
	for rank := 1; rank < n; rank++ {
		if want[rank] < want[rank-1] {
			t.Fatalf("rank hues must be non-decreasing, rank %d", rank)
		}
	}
}

func TestGradientRowsLayoutIsConstantPerRow(t *testing.T) {
	g, out := newTestGradient(t)
	g.Start()
	g.Tick(time.Millisecond)

	for row := 0; row < testGrid.Rows; row++ {
		first := out.Pixel(testGrid.Index(row, 0))
		for col := 1; col < testGrid.Cols; col++ {
			if out.Pixel(testGrid.Index(row, col)) != first {
				t.Fatalf("row %d is not a single hue", row)
			}
		}
	}
	// distinct rows get distinct hues when the colors differ
	if out.Pixel(testGrid.Index(0, 0)) == out.Pixel(testGrid.Index(testGrid.Rows-1, 0)) {
		t.Fatal("first and last row should differ")
	}
}

func TestGradientColumnsSnakeFoldsOddRows(t *testing.T) {
	g, out := newTestGradient(t)
	g.layoutP.SetValue(layoutColumnsSnake)
	g.Start()
	g.Tick(time.Millisecond)

	// an odd row reversed equals an even row
	for col := 0; col < testGrid.Cols; col++ {
		even := out.Pixel(testGrid.Index(0, col))
		odd := out.Pixel(testGrid.Index(1, testGrid.Cols-1-col))
		if even != odd {
			t.Fatalf("snake fold broken at col %d", col)
		}
	}
}

func TestGradientOffsetAdvancesEachFrame(t *testing.T) {
	g, out := newTestGradient(t)
	g.Start()
	g.Tick(1 * time.Millisecond)
	// watch a mid-ramp pixel; the endpoints sit deep in a sextant where
	// a few offset steps vanish under gamma
	probe := testGrid.Index(1, 0)
	first := out.Pixel(probe)
	for i := 2; i <= 9; i++ {
		g.Tick(time.Duration(i) * time.Millisecond)
	}
	last := out.Pixel(probe)
	if first == last {
		t.Fatal("hue rotation must move the frame across ticks")
	}
	if out.FrameID() != 9 {
		t.Fatalf("expected nine frames, got %d", out.FrameID())
	}
}
