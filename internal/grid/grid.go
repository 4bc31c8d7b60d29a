package grid

import "github.com/KaramelBytes/datagen-cli/internal/column"

// Grid is the logical table produced by one generation run. Row 0 holds the
// headers; rows 1..N hold data. Cells live in a single column-major arena so
// backward lookups are plain index arithmetic.
type Grid struct {
	cols  int
	rows  int // including the header row
	cells []column.Value
}

func newGrid(cols, dataRows int) *Grid {
	return &Grid{
		cols:  cols,
		rows:  dataRows + 1,
		cells: make([]column.Value, 0, cols*(dataRows+1)),
	}
}

func (g *Grid) index(row, col int) int { return col*g.rows + row }

// append stores the next cell in column-major order.
func (g *Grid) append(v column.Value) { g.cells = append(g.cells, v) }

// filled reports whether (row, col) has been produced already.
func (g *Grid) filled(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols && g.index(row, col) < len(g.cells)
}

// Rows returns the number of rows including the header row.
func (g *Grid) Rows() int { return g.rows }

// DataRows returns the number of generated data rows.
func (g *Grid) DataRows() int { return g.rows - 1 }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// At returns the cell at (row, col). It panics when the cell is out of range.
func (g *Grid) At(row, col int) column.Value {
	if !g.filled(row, col) {
		panic("grid: cell out of range")
	}
	return g.cells[g.index(row, col)]
}

// Row returns a copy of one row in column order.
func (g *Grid) Row(row int) []column.Value {
	out := make([]column.Value, g.cols)
	for c := 0; c < g.cols; c++ {
		out[c] = g.At(row, c)
	}
	return out
}

// Header returns the header row as strings.
func (g *Grid) Header() []string {
	out := make([]string, g.cols)
	for c := 0; c < g.cols; c++ {
		out[c] = g.At(0, c).String()
	}
	return out
}

// Column returns the data cells (rows 1..N) of one column.
func (g *Grid) Column(col int) []column.Value {
	start := g.index(1, col)
	out := make([]column.Value, g.rows-1)
	copy(out, g.cells[start:start+g.rows-1])
	return out
}

// Strings renders every row, header included, as text.
func (g *Grid) Strings() [][]string {
	out := make([][]string, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]string, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = g.At(r, c).String()
		}
		out[r] = row
	}
	return out
}
