package pattern

import (
	"errors"

	"github.com/effectbox/ledmatrix/internal/display"
	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/strip"
)

// Catalog is the fixed ordered collection of patterns the menu cycles
// through. Membership never changes after construction.
type Catalog struct {
	patterns []Pattern
	sel      int
}

// NewCatalog builds the five patterns in their stable menu order.
func NewCatalog(out strip.Output, disp display.Display, g layout.Grid) (*Catalog, error) {
	if g.Count() == 0 {
		return nil, errors.New("catalog needs a non-empty grid")
	}
	transition, err := NewTransition(out, g)
	if err != nil {
		return nil, err
	}
	gradient, err := NewGradient(out, g)
	if err != nil {
		return nil, err
	}
	effects, err := NewEffects(out, disp, g)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		patterns: []Pattern{
			NewWhite(out, g),
			NewMonochrome(out, g),
			transition,
			gradient,
			effects,
		},
	}, nil
}

func (c *Catalog) Len() int { return len(c.patterns) }

// Selected returns the currently selected pattern.
func (c *Catalog) Selected() Pattern { return c.patterns[c.sel] }

// SelectedIndex returns the selection position.
func (c *Catalog) SelectedIndex() int { return c.sel }

// Next advances the selection, wrapping past the end.
func (c *Catalog) Next() Pattern {
	c.sel = (c.sel + 1) % len(c.patterns)
	return c.patterns[c.sel]
}

// Prev moves the selection back, wrapping past the start.
func (c *Catalog) Prev() Pattern {
	c.sel = (c.sel + len(c.patterns) - 1) % len(c.patterns)
	return c.patterns[c.sel]
}

// Names lists the pattern names in menu order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.patterns))
	for i, p := range c.patterns {
		out[i] = p.Name()
	}
	return out
}
