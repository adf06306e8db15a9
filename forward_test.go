package hashlife

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/phroun/hashlife/naive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForwardMatchesBruteForce checks every exponent on several levels: the
// centre returned by Forward(root, k) must equal the reference grid advanced
// by 2^k generations.
func TestForwardMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for level := 2; level <= 6; level++ {
		size := 1 << level
		for trial := 0; trial < 4; trial++ {
			density := []float64{0.15, 0.3, 0.5, 0.7}[trial]
			cells := randomGrid(rng, size, size, density)

			for k := 0; k <= level-2; k++ {
				t.Run(fmt.Sprintf("L%d/trial%d/k%d", level, trial, k), func(t *testing.T) {
					s := NewStore()
					u, err := New(size, size, cells, Options{Store: s, Logger: discardLogger})
					require.NoError(t, err)
					require.Equal(t, level, u.Level())

					result := s.Forward(u.Root(), k)
					require.Equal(t, level-1, s.Level(result))

					ref := naive.New(size, size, cells)
					ref.Advance(int64(1) << k)

					got := FromRoot(result, Options{Store: s, Logger: discardLogger})
					quarter := int64(size / 4)
					for i := -quarter; i < quarter; i++ {
						for j := -quarter; j < quarter; j++ {
							require.Equal(t, ref.Get(i, j), got.Get(i, j), "cell (%d, %d)", i, j)
						}
					}
				})
			}
		}
	}
}

func TestForwardSharesResultsAcrossExponents(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cells := randomGrid(rng, 32, 32, 0.35)

	s := NewStore()
	u, err := New(32, 32, cells, Options{Store: s, Logger: discardLogger})
	require.NoError(t, err)

	for k := 0; k <= 3; k++ {
		s.Forward(u.Root(), k)
	}
	before := s.Stats()
	for k := 0; k <= 3; k++ {
		s.Forward(u.Root(), k)
	}
	after := s.Stats()

	assert.Equal(t, before.CacheMisses, after.CacheMisses, "repeat calls are served from the table")
	assert.Equal(t, before.CacheHits+4, after.CacheHits)
}

func TestForwardAllDead(t *testing.T) {
	s := NewStore()

	for level := 2; level <= 12; level++ {
		z := s.Zero(level)
		results := s.Stats().Results
		for k := 0; k <= level-2; k++ {
			got := s.Forward(z, k)
			assert.Equal(t, s.Zero(level-1), got)
			assert.Equal(t, uint64(0), s.Population(got))
		}
		assert.Equal(t, results, s.Stats().Results, "dead regions add no results")
	}
}

func TestForwardPreconditions(t *testing.T) {
	s := NewStore()

	err := recoverError(func() { s.Forward(s.Zero(1), 0) })
	assert.ErrorIs(t, err, ErrLevelTooSmall)

	err = recoverError(func() { s.Forward(LiveCell, 0) })
	assert.ErrorIs(t, err, ErrLevelTooSmall)

	err = recoverError(func() { s.Forward(s.Zero(4), 3) })
	assert.ErrorIs(t, err, ErrExponentOutOfRange)

	err = recoverError(func() { s.Forward(s.Zero(4), -1) })
	assert.ErrorIs(t, err, ErrExponentOutOfRange)
}
