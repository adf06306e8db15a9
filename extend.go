package hashlife

import "fmt"

// Extend returns the node one level larger with id centred in it and a dead
// border around it. The represented cells keep their coordinates.
func (s *Store) Extend(id NodeID) NodeID {
	n := s.get(id)
	if n.level == 0 {
		// A level-0 root covers only (0, 0), which is the se cell of a level-1 node.
		z := s.Zero(0)
		return s.Join(z, z, z, id)
	}

	z := s.Zero(int(n.level) - 1)
	return s.Join(
		s.Join(z, z, z, n.nw),
		s.Join(z, z, n.ne, z),
		s.Join(z, n.sw, z, z),
		s.Join(n.se, z, z, z),
	)
}

// Center returns the level L-1 node covering the middle of id.
func (s *Store) Center(id NodeID) NodeID {
	n := s.get(id)
	if n.level < 2 {
		panic(fmt.Errorf("%w: center of level %d", ErrLevelTooSmall, n.level))
	}
	return s.centreOf(n.nw, n.ne, n.sw, n.se)
}

// PeripheralAlive reports whether any live cell lies outside the centre of id.
// Nodes below level 2 have no interior, so any live cell counts.
func (s *Store) PeripheralAlive(id NodeID) bool {
	n := s.get(id)
	if n.level < 2 {
		return n.population > 0
	}

	// The centre is made of the inner grandchildren; everything else is the ring.
	g := s.grandchildren(n)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if (i == 1 || i == 2) && (j == 1 || j == 2) {
				continue
			}
			if s.get(g[i][j]).population > 0 {
				return true
			}
		}
	}
	return false
}
