package hashlife

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/phroun/hashlife/naive"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gridFromRows parses rows of '.' and 'O' into a dense grid.
func gridFromRows(rows ...string) [][]bool {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		cells[r] = make([]bool, len(row))
		for c, ch := range row {
			cells[r][c] = ch == 'O'
		}
	}
	return cells
}

// randomGrid returns a rows x cols grid with roughly the given live density.
func randomGrid(rng *rand.Rand, rows, cols int, density float64) [][]bool {
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
		for c := range cells[r] {
			cells[r][c] = rng.Float64() < density
		}
	}
	return cells
}

func newTestUniverse(t *testing.T, cells [][]bool) *Universe {
	t.Helper()
	rows, cols := len(cells), 0
	if rows > 0 {
		cols = len(cells[0])
	}
	u, err := New(rows, cols, cells, Options{Logger: discardLogger})
	require.NoError(t, err)
	return u
}

// requireSameCells fails unless u and ref hold exactly the same live cells.
func requireSameCells(t *testing.T, u *Universe, ref *naive.Grid, context string) {
	t.Helper()
	require.Equal(t, uint64(ref.Population()), u.Population(), "%s: population", context)
	u.LiveCells(func(i, j int64) bool {
		require.True(t, ref.Get(i, j), "%s: (%d, %d) alive in hashlife, dead in reference", context, i, j)
		return true
	})
}

// liveSet collects every live cell of u.
func liveSet(u *Universe) map[[2]int64]bool {
	set := make(map[[2]int64]bool)
	u.LiveCells(func(i, j int64) bool {
		set[[2]int64{i, j}] = true
		return true
	})
	return set
}

// recoverError runs fn and returns the error it panicked with, if any.
func recoverError(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = errors.New(fmt.Sprint(r))
	}()
	fn()
	return nil
}
