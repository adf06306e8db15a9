// Package naive implements a brute-force Game of Life on a dense grid. It is
// slow and simple, and serves as the reference the quadtree simulator is
// checked against.
package naive

// Grid is a dense Life grid on the unbounded plane. The backing array grows by
// one cell on every side whenever a live cell touches its border, so a step
// never loses cells at the edge.
//
// Coordinates follow the hashlife package: initial cell cells[r][c] sits at
// (r - rows/2, c - cols/2).
type Grid struct {
	rows, cols int
	top, left  int64 // universe coordinates of cells[0][0]
	cells      []bool
	next       []bool
	generation int64
}

// New copies a rows x cols grid. Short or missing rows read as dead.
func New(rows, cols int, cells [][]bool) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	g := &Grid{
		rows:  rows,
		cols:  cols,
		top:   -int64(rows / 2),
		left:  -int64(cols / 2),
		cells: make([]bool, rows*cols),
	}
	for r := 0; r < rows && r < len(cells); r++ {
		for c := 0; c < cols && c < len(cells[r]); c++ {
			g.cells[r*cols+c] = cells[r][c]
		}
	}
	return g
}

// Get returns the state of the cell at (i, j).
func (g *Grid) Get(i, j int64) bool {
	r, c := i-g.top, j-g.left
	if r < 0 || c < 0 || r >= int64(g.rows) || c >= int64(g.cols) {
		return false
	}
	return g.cells[r*int64(g.cols)+c]
}

// Generation returns the number of steps taken.
func (g *Grid) Generation() int64 {
	return g.generation
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	count := 0
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return count
}

// Advance takes n steps.
func (g *Grid) Advance(n int64) {
	for ; n > 0; n-- {
		g.Step()
	}
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	if g.borderAlive() {
		g.pad()
	}

	if len(g.next) != len(g.cells) {
		g.next = make([]bool, len(g.cells))
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			neighbours := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr < 0 || nc < 0 || nr >= g.rows || nc >= g.cols {
						continue
					}
					if g.cells[nr*g.cols+nc] {
						neighbours++
					}
				}
			}
			idx := r*g.cols + c
			alive := g.cells[idx]
			g.next[idx] = (alive && (neighbours == 2 || neighbours == 3)) || (!alive && neighbours == 3)
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// borderAlive reports whether any live cell sits on the outermost ring.
func (g *Grid) borderAlive() bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if r != 0 && c != 0 && r != g.rows-1 && c != g.cols-1 {
				continue
			}
			if g.cells[r*g.cols+c] {
				return true
			}
		}
	}
	return false
}

// pad surrounds the grid with a one-cell dead border.
func (g *Grid) pad() {
	rows, cols := g.rows+2, g.cols+2
	cells := make([]bool, rows*cols)
	for r := 0; r < g.rows; r++ {
		copy(cells[(r+1)*cols+1:(r+1)*cols+1+g.cols], g.cells[r*g.cols:(r+1)*g.cols])
	}
	g.rows, g.cols = rows, cols
	g.top--
	g.left--
	g.cells = cells
	g.next = nil
}
