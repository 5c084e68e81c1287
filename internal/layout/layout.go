// Package layout maps the logical rows×cols matrix onto the flat strip
// index space.
package layout

// Grid describes the logical 2-D matrix. Pixels are addressed by a flat
// 0-based index in row-major order.
type Grid struct {
	Rows int
	Cols int
}

// Count returns the total pixel count.
func (g Grid) Count() int { return g.Rows * g.Cols }

// Index maps row,col -> linear pixel index.
func (g Grid) Index(row, col int) int { return row*g.Cols + col }

// RowOf returns the row of a linear index.
func (g Grid) RowOf(i int) int { return i / g.Cols }

// ColOf returns the column of a linear index.
func (g Grid) ColOf(i int) int { return i % g.Cols }

// SerpentineCol folds the column into a back-and-forth order by row
// parity: even rows run left to right, odd rows right to left.
func (g Grid) SerpentineCol(row, col int) int {
	if row%2 == 1 {
		return g.Cols - 1 - col
	}
	return col
}

// Wiring describes how the logical grid is chained into the physical
// strip. Serpentine strips flip every other row.
type Wiring struct {
	SerpentineRows bool
}

// StripIndex maps a logical pixel index to its physical strip position.
func (w Wiring) StripIndex(g Grid, i int) int {
	if !w.SerpentineRows {
		return i
	}
	row := g.RowOf(i)
	return g.Index(row, g.SerpentineCol(row, g.ColOf(i)))
}
