package hashlife

import (
	"math/rand"
	"testing"

	"github.com/phroun/hashlife/naive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectKeepsReachableContent(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	cells := randomGrid(rng, 16, 16, 0.4)

	u := newTestUniverse(t, cells)
	require.NoError(t, u.Advance(37))
	want := liveSet(u)
	root := u.Root()

	stats := u.Collect()
	assert.Greater(t, stats.Swept, 0, "a run leaves unreachable intermediates behind")
	assert.Equal(t, root, u.Root())
	assert.Equal(t, want, liveSet(u))
	assert.Equal(t, stats.Marked, u.Store().Len())

	// The simulation carries on correctly after the sweep.
	ref := naive.New(16, 16, cells)
	ref.Advance(37 + 29)
	require.NoError(t, u.Advance(29))
	requireSameCells(t, u, ref, "after collect")
}

func TestCollectPinsLeavesAndZeros(t *testing.T) {
	s := NewStore()
	zeros := make([]NodeID, 8)
	for level := range zeros {
		zeros[level] = s.Zero(level)
	}
	s.Join(LiveCell, LiveCell, DeadCell, DeadCell)

	stats := s.Collect()
	assert.Equal(t, 1, stats.Swept)
	for level, z := range zeros {
		assert.Equal(t, z, s.Zero(level))
		assert.Equal(t, level, s.Level(z))
	}
	assert.True(t, s.Node(LiveCell).Alive())
}

func TestCollectRecyclesSlots(t *testing.T) {
	s := NewStore()
	garbage := s.Join(LiveCell, DeadCell, LiveCell, DeadCell)

	s.Collect()
	assert.Equal(t, 1, s.Stats().FreeSlots)
	err := recoverError(func() { s.Node(garbage) })
	assert.ErrorIs(t, err, ErrInvalidNode)

	// The freed slot is handed out again, and the new node is canonical.
	n := s.Join(DeadCell, LiveCell, DeadCell, LiveCell)
	assert.Equal(t, garbage, n)
	assert.Equal(t, 0, s.Stats().FreeSlots)
	assert.Equal(t, n, s.Join(DeadCell, LiveCell, DeadCell, LiveCell))
	assert.Equal(t, uint64(2), s.Population(n))
}

func TestCollectDropsResultsOfSweptNodes(t *testing.T) {
	s := NewStore()
	old, err := New(8, 8, randomGrid(rand.New(rand.NewSource(4)), 8, 8, 0.5), Options{Store: s, Logger: discardLogger})
	require.NoError(t, err)
	require.NoError(t, old.Advance(20))
	require.Greater(t, s.Stats().Results, 0)

	keep, err := New(3, 3, gridFromRows(gliderRows...), Options{Store: s, Logger: discardLogger})
	require.NoError(t, err)

	stats := s.Collect(keep.Root())
	assert.Greater(t, stats.ResultsDropped, 0)
	for key, value := range s.results {
		assert.NotEqual(t, uint8(freedLevel), s.nodes[key.id].level)
		assert.NotEqual(t, uint8(freedLevel), s.nodes[value].level)
	}
}

func TestCollectKeepsCachedResults(t *testing.T) {
	u := newTestUniverse(t, gridFromRows(gliderRows...))
	s := u.Store()
	root := u.Root()

	big := s.Extend(s.Extend(root))
	s.Forward(big, 1)

	s.Collect(big)
	misses := s.Stats().CacheMisses
	s.Forward(big, 1)
	assert.Equal(t, misses, s.Stats().CacheMisses, "results of live nodes survive")
}

func TestUniverseAutoCollect(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	cells := randomGrid(rng, 16, 16, 0.35)

	u, err := New(16, 16, cells, Options{Logger: discardLogger, CollectThreshold: 200})
	require.NoError(t, err)
	ref := naive.New(16, 16, cells)

	for i := 0; i < 10; i++ {
		require.NoError(t, u.Advance(10))
		ref.Advance(10)
		requireSameCells(t, u, ref, "auto collect")
	}
	assert.Greater(t, u.Store().Stats().Collections, uint64(0))
}
