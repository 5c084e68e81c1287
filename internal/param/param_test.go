package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/effectbox/ledmatrix/internal/param"
)

var numberBoundaryCases = []struct {
	Name        string
	Initial     int
	Min, Max    int
	Wrap        bool
	Advance     int
	Retreat     int
	ExpectAfter int
}{
	{"clamp at max", 10, 0, 10, false, 3, 0, 10},
	{"wrap at max", 10, 0, 10, true, 1, 0, 0},
	{"clamp at min", 0, 0, 10, false, 0, 5, 0},
	{"wrap at min", 0, 0, 10, true, 0, 1, 10},
	{"mid range up", 4, 0, 10, false, 2, 0, 6},
	{"mid range down", 4, 0, 10, false, 0, 3, 1},
}

func TestNumberStepping(t *testing.T) {
	for _, tc := range numberBoundaryCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := Number("Level", "%", tc.Initial, tc.Min, tc.Max, tc.Wrap)
			for i := 0; i < tc.Advance; i++ {
				p.Advance()
			}
			for i := 0; i < tc.Retreat; i++ {
				p.Retreat()
			}
			assert.Equal(t, tc.ExpectAfter, p.Value())
		})
	}
}

func TestNumberStaysInRangeUnderRepeatedStepping(t *testing.T) {
	p := Number("Speed", "", 5, 0, 10, false)
	for i := 0; i < 100; i++ {
		p.Advance()
	}
	assert.Equal(t, 10, p.Value())
	for i := 0; i < 100; i++ {
		p.Retreat()
	}
	assert.Equal(t, 0, p.Value())
}

func TestNumberDisplayText(t *testing.T) {
	p := Number("Level", "%", 42, 0, 100, false)
	assert.Equal(t, "42%", p.DisplayText())
	p = Number("Color", "", 7, 0, 59, true)
	assert.Equal(t, "7", p.DisplayText())
}

func TestEnumCyclesThroughLabels(t *testing.T) {
	p, err := Enum("Mode", 0, "Repeat", "Rebound")
	assert.NoError(t, err)

	assert.Equal(t, "Repeat", p.DisplayText())
	p.Advance()
	assert.Equal(t, 1, p.Value())
	assert.Equal(t, "Rebound", p.DisplayText())
	p.Advance() // wraps
	assert.Equal(t, 0, p.Value())
	assert.Equal(t, "Repeat", p.DisplayText())
	p.Retreat() // wraps back
	assert.Equal(t, "Rebound", p.DisplayText())
}

func TestEnumRejectsEmptyOptionList(t *testing.T) {
	_, err := Enum("Mode", 0)
	assert.Error(t, err)
}

func TestResetRestoresInitial(t *testing.T) {
	p := Number("Level", "%", 50, 0, 100, false)
	p.Advance()
	p.Advance()
	p.Reset()
	assert.Equal(t, 50, p.Value())
}

func TestSetValueClamps(t *testing.T) {
	p := Number("Level", "%", 50, 0, 100, false)
	p.SetValue(400)
	assert.Equal(t, 100, p.Value())
	p.SetValue(-3)
	assert.Equal(t, 0, p.Value())
}
