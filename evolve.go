package hashlife

import "math/bits"

// A 4x4 region is packed row-major into a uint16: cell (r, c) is bit r*4+c.

// neighbourMask is the 3x3 block around cell (1, 1), minus the cell itself.
const neighbourMask uint16 = 0x0757

// centreCells lists the four cells of a 4x4 region that have a full neighbourhood,
// in nw, ne, sw, se order.
var centreCells = [4]struct{ r, c int }{{1, 1}, {1, 2}, {2, 1}, {2, 2}}

// pack4x4 reads the sixteen leaves of a level-2 node into a bitmask.
func (s *Store) pack4x4(id NodeID) uint16 {
	n := s.get(id)
	quads := [4]NodeID{n.nw, n.ne, n.sw, n.se}

	var packed uint16
	for qi, q := range quads {
		qn := s.get(q)
		cells := [4]NodeID{qn.nw, qn.ne, qn.sw, qn.se}
		for ci, cell := range cells {
			if !s.get(cell).alive {
				continue
			}
			r := (qi/2)*2 + ci/2
			c := (qi%2)*2 + ci%2
			packed |= 1 << (r*4 + c)
		}
	}
	return packed
}

// nextState applies B3/S23 to one cell given its packed 4x4 context.
func nextState(packed uint16, r, c int) bool {
	shift := (r-1)*4 + (c - 1)
	count := bits.OnesCount16(packed & (neighbourMask << shift))
	if packed&(1<<(r*4+c)) != 0 {
		return count == 2 || count == 3
	}
	return count == 3
}

// evolve computes the level-1 centre of a level-2 node one generation ahead.
func (s *Store) evolve(id NodeID) NodeID {
	packed := s.pack4x4(id)

	var out [4]NodeID
	for i, cell := range centreCells {
		out[i] = s.Cell(nextState(packed, cell.r, cell.c))
	}
	return s.Join(out[0], out[1], out[2], out[3])
}
