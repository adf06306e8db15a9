// Package render draws a rectangular window of a Life plane as text.
package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// CellSource is anything that answers point queries.
type CellSource interface {
	Get(i, j int64) bool
}

// Viewport is the window to draw: rows [Top, Top+Rows), columns [Left, Left+Cols).
type Viewport struct {
	Top, Left  int64
	Rows, Cols int64
}

// Options controls the glyphs and colouring.
type Options struct {
	Alive string // glyph for a live cell; defaults to "O"
	Dead  string // glyph for a dead cell; defaults to "."
	Color bool   // style live cells with lipgloss
}

var (
	aliveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7")).Bold(true)
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

// Text renders vp as newline separated rows.
func Text(src CellSource, vp Viewport, opts Options) string {
	alive, dead := opts.Alive, opts.Dead
	if alive == "" {
		alive = "O"
	}
	if dead == "" {
		dead = "."
	}
	if opts.Color {
		alive = aliveStyle.Render(alive)
		dead = deadStyle.Render(dead)
	}

	var b strings.Builder
	for r := int64(0); r < vp.Rows; r++ {
		for c := int64(0); c < vp.Cols; c++ {
			if src.Get(vp.Top+r, vp.Left+c) {
				b.WriteString(alive)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Fit returns a viewport of at most maxRows x maxCols centred on the given box.
func Fit(top, left, rows, cols, maxRows, maxCols int64) Viewport {
	vp := Viewport{Top: top, Left: left, Rows: rows, Cols: cols}
	if rows > maxRows {
		vp.Top += (rows - maxRows) / 2
		vp.Rows = maxRows
	}
	if cols > maxCols {
		vp.Left += (cols - maxCols) / 2
		vp.Cols = maxCols
	}
	return vp
}

// ColorEnabled resolves a colour mode ("auto", "always", "never") for f.
// Auto colours only when f is a terminal.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
