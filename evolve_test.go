package hashlife

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// level2FromMask builds the level-2 node whose cell (r, c) is bit r*4+c of mask.
func level2FromMask(s *Store, mask uint16) NodeID {
	cell := func(r, c int) NodeID {
		return s.Cell(mask&(1<<(r*4+c)) != 0)
	}
	quad := func(r, c int) NodeID {
		return s.Join(cell(r, c), cell(r, c+1), cell(r+1, c), cell(r+1, c+1))
	}
	return s.Join(quad(0, 0), quad(0, 2), quad(2, 0), quad(2, 2))
}

// slowNext applies the rule by counting neighbours cell by cell.
func slowNext(mask uint16, r, c int) bool {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if mask&(1<<((r+dr)*4+(c+dc))) != 0 {
				count++
			}
		}
	}
	if mask&(1<<(r*4+c)) != 0 {
		return count == 2 || count == 3
	}
	return count == 3
}

func TestEvolveAllLevel2Nodes(t *testing.T) {
	s := NewStore()

	for m := 0; m < 1<<16; m++ {
		mask := uint16(m)
		id := level2FromMask(s, mask)
		require.Equal(t, mask, s.pack4x4(id))

		out := s.Node(s.Forward(id, 0))
		require.Equal(t, 1, out.Level())

		nw, ne, sw, se := out.Children()
		got := [4]bool{s.Node(nw).Alive(), s.Node(ne).Alive(), s.Node(sw).Alive(), s.Node(se).Alive()}
		want := [4]bool{slowNext(mask, 1, 1), slowNext(mask, 1, 2), slowNext(mask, 2, 1), slowNext(mask, 2, 2)}
		require.Equal(t, want, got, "mask %016b", mask)
	}
}

func TestEvolveIsMemoized(t *testing.T) {
	s := NewStore()
	id := level2FromMask(s, 0b0000_0110_0110_0000) // block

	first := s.Forward(id, 0)
	misses := s.Stats().CacheMisses
	second := s.Forward(id, 0)

	require.Equal(t, first, second)
	require.Equal(t, misses, s.Stats().CacheMisses)
	require.Equal(t, uint64(4), s.Population(first))
}
