package hashlife

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendPreservesCells(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for level := 0; level <= 5; level++ {
		t.Run(fmt.Sprintf("L%d", level), func(t *testing.T) {
			size := 1 << level
			s := NewStore()
			u, err := New(size, size, randomGrid(rng, size, size, 0.5), Options{Store: s, Logger: discardLogger})
			require.NoError(t, err)
			require.Equal(t, level, u.Level())

			ext := FromRoot(s.Extend(u.Root()), Options{Store: s, Logger: discardLogger})
			require.Equal(t, level+1, ext.Level())
			assert.Equal(t, u.Population(), ext.Population())

			// Every cell of the old square, and a ring around it, agrees.
			half := int64(size) // covers the extended square completely
			for i := -half; i < half; i++ {
				for j := -half; j < half; j++ {
					require.Equal(t, u.Get(i, j), ext.Get(i, j), "cell (%d, %d)", i, j)
				}
			}
			if level >= 1 {
				assert.False(t, s.PeripheralAlive(ext.Root()), "extended content sits inside the centre")
			}
		})
	}
}

func TestExtendLevel0(t *testing.T) {
	s := NewStore()
	ext := s.Extend(LiveCell)

	n := s.Node(ext)
	require.Equal(t, 1, n.Level())
	_, _, _, se := n.Children()
	assert.Equal(t, LiveCell, se)

	u := FromRoot(ext, Options{Store: s, Logger: discardLogger})
	assert.True(t, u.Get(0, 0))
	assert.False(t, u.Get(-1, -1))
	assert.Equal(t, uint64(1), u.Population())
}

func TestCenter(t *testing.T) {
	s := NewStore()
	u, err := New(4, 4, gridFromRows(
		"O...",
		".OO.",
		".O..",
		"...O",
	), Options{Store: s, Logger: discardLogger})
	require.NoError(t, err)

	c := s.Center(u.Root())
	nw, ne, sw, se := s.Node(c).Children()
	assert.Equal(t, []NodeID{LiveCell, LiveCell, LiveCell, DeadCell}, []NodeID{nw, ne, sw, se})

	// Center undoes Extend.
	assert.Equal(t, u.Root(), s.Center(s.Extend(u.Root())))

	err = recoverError(func() { s.Center(s.Zero(1)) })
	assert.ErrorIs(t, err, ErrLevelTooSmall)
}

func TestPeripheralAlive(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{
			name: "empty",
			rows: []string{"....", "....", "....", "...."},
			want: false,
		},
		{
			name: "centre only",
			rows: []string{"....", ".OO.", ".O..", "...."},
			want: false,
		},
		{
			name: "corner",
			rows: []string{"O...", "....", "....", "...."},
			want: true,
		},
		{
			name: "edge",
			rows: []string{"....", "....", "...O", "...."},
			want: true,
		},
		{
			name: "both",
			rows: []string{"....", ".OO.", ".OO.", ".O.."},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			u, err := New(4, 4, gridFromRows(tt.rows...), Options{Store: s, Logger: discardLogger})
			require.NoError(t, err)

			assert.Equal(t, tt.want, s.PeripheralAlive(u.Root()))

			// Equivalent population formulation.
			differs := s.Population(u.Root()) != s.Population(s.Center(u.Root()))
			assert.Equal(t, differs, s.PeripheralAlive(u.Root()))
		})
	}
}

func TestPeripheralAliveSmallNodes(t *testing.T) {
	s := NewStore()

	assert.False(t, s.PeripheralAlive(DeadCell))
	assert.True(t, s.PeripheralAlive(LiveCell))
	assert.False(t, s.PeripheralAlive(s.Zero(1)))
	assert.True(t, s.PeripheralAlive(s.Join(DeadCell, DeadCell, LiveCell, DeadCell)))
}
