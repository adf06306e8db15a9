package hashlife

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreLeaves(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, DeadCell, s.Cell(false))
	assert.Equal(t, LiveCell, s.Cell(true))

	dead, live := s.Node(DeadCell), s.Node(LiveCell)
	assert.True(t, dead.IsLeaf())
	assert.False(t, dead.Alive())
	assert.Equal(t, uint64(0), dead.Population())
	assert.True(t, live.Alive())
	assert.Equal(t, uint64(1), live.Population())
	assert.Equal(t, 0, live.Level())
}

func TestJoinIsCanonical(t *testing.T) {
	s := NewStore()

	a := s.Join(LiveCell, DeadCell, DeadCell, LiveCell)
	b := s.Join(LiveCell, DeadCell, DeadCell, LiveCell)
	assert.Equal(t, a, b)
	assert.Equal(t, 3, s.Len())

	c := s.Join(DeadCell, LiveCell, LiveCell, DeadCell)
	assert.NotEqual(t, a, c)

	n := s.Node(a)
	assert.Equal(t, 1, n.Level())
	assert.Equal(t, uint64(2), n.Population())
	assert.False(t, n.IsLeaf())
	nw, ne, sw, se := n.Children()
	assert.Equal(t, []NodeID{LiveCell, DeadCell, DeadCell, LiveCell}, []NodeID{nw, ne, sw, se})

	// Canonicalizing an already canonical node changes nothing.
	assert.Equal(t, a, s.Join(nw, ne, sw, se))
}

func TestIndependentBuildsShareNodes(t *testing.T) {
	s := NewStore()
	rng := rand.New(rand.NewSource(7))
	cells := randomGrid(rng, 13, 9, 0.4)

	u1, err := New(13, 9, cells, Options{Store: s, Logger: discardLogger})
	require.NoError(t, err)
	size := s.Len()

	u2, err := New(13, 9, cells, Options{Store: s, Logger: discardLogger})
	require.NoError(t, err)

	assert.Equal(t, u1.Root(), u2.Root())
	assert.Equal(t, size, s.Len(), "second build must not add nodes")
}

func TestZeroIsMemoized(t *testing.T) {
	s := NewStore()

	for level := 0; level <= 10; level++ {
		z := s.Zero(level)
		assert.Equal(t, z, s.Zero(level))
		assert.Equal(t, level, s.Level(z))
		assert.Equal(t, uint64(0), s.Population(z))
	}
	assert.Equal(t, DeadCell, s.Zero(0))

	// A zero built by hand is the same node.
	z1 := s.Join(DeadCell, DeadCell, DeadCell, DeadCell)
	assert.Equal(t, s.Zero(1), z1)
}

func TestJoinLevelMismatchPanics(t *testing.T) {
	s := NewStore()
	one := s.Zero(1)

	err := recoverError(func() { s.Join(one, DeadCell, DeadCell, DeadCell) })
	assert.ErrorIs(t, err, ErrLevelMismatch)
}

func TestInvalidNodePanics(t *testing.T) {
	s := NewStore()

	err := recoverError(func() { s.Node(NodeID(99)) })
	assert.ErrorIs(t, err, ErrInvalidNode)

	err = recoverError(func() { s.Join(DeadCell, DeadCell, DeadCell, NodeID(1000)) })
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestPopulationSaturates(t *testing.T) {
	assert.Equal(t, uint64(10), addPopulation(1, 2, 3, 4))
	assert.Equal(t, uint64(math.MaxUint64), addPopulation(math.MaxUint64, 1, 0, 0))
	assert.Equal(t, uint64(math.MaxUint64), addPopulation(math.MaxUint64/2, math.MaxUint64/2, 2, 0))
}

func TestClearResults(t *testing.T) {
	u := newTestUniverse(t, gridFromRows(".O.", "..O", "OOO"))
	require.NoError(t, u.Advance(8))

	s := u.Store()
	require.Greater(t, s.Stats().Results, 0)
	s.ClearResults()
	assert.Equal(t, 0, s.Stats().Results)

	// Results are recomputed on demand.
	require.NoError(t, u.Advance(8))
	assert.Equal(t, uint64(5), u.Population())
}
