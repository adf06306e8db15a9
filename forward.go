package hashlife

import "fmt"

// Forward returns the level-(L-1) centre of id advanced by 2^k generations,
// where L is the level of id. It requires L >= 2 and 0 <= k <= L-2, and panics
// otherwise: a smaller node cannot report any centre without truncation.
func (s *Store) Forward(id NodeID, k int) NodeID {
	n := s.get(id)
	if n.level < 2 {
		panic(fmt.Errorf("%w: forward on level %d", ErrLevelTooSmall, n.level))
	}
	if k < 0 || k > int(n.level)-2 {
		panic(fmt.Errorf("%w: k=%d on level %d", ErrExponentOutOfRange, k, n.level))
	}
	return s.forward(id, k)
}

// forward is Forward without the precondition checks.
func (s *Store) forward(id NodeID, k int) NodeID {
	n := s.get(id)
	if n.population == 0 {
		return s.Zero(int(n.level) - 1)
	}

	key := resultKey{id: id, k: uint8(k)}
	if r, ok := s.results[key]; ok {
		s.hits++
		return r
	}
	s.misses++

	var r NodeID
	if n.level == 2 {
		r = s.evolve(id)
	} else {
		r = s.advanceQuads(n, k)
	}
	s.results[key] = r
	return r
}

// advanceQuads runs the recursive step for a node of level L >= 3.
//
// The node is split into a 4x4 grid of level L-2 grandchildren. Each of the
// nine overlapping 2x2 windows yields a level L-2 square inset by 1/8 of the
// node: at the maximum exponent that square is already advanced by
// 2^(L-3) generations, otherwise it is the untouched window centre. Every 2x2
// group of those nine squares is then advanced once more, and the four results
// tile the node's centre.
func (s *Store) advanceQuads(n node, k int) NodeID {
	g := s.grandchildren(n)
	full := k == int(n.level)-2
	inner := k
	if full {
		inner = int(n.level) - 3
	}

	var mid [3][3]NodeID
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if full {
				w := s.Join(g[i][j], g[i][j+1], g[i+1][j], g[i+1][j+1])
				mid[i][j] = s.forward(w, inner)
			} else {
				mid[i][j] = s.centreOf(g[i][j], g[i][j+1], g[i+1][j], g[i+1][j+1])
			}
		}
	}

	var out [2][2]NodeID
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			w := s.Join(mid[i][j], mid[i][j+1], mid[i+1][j], mid[i+1][j+1])
			out[i][j] = s.forward(w, inner)
		}
	}
	return s.Join(out[0][0], out[0][1], out[1][0], out[1][1])
}

// grandchildren lays out the sixteen level L-2 nodes of n as a row-major grid.
func (s *Store) grandchildren(n node) [4][4]NodeID {
	nw, ne, sw, se := s.get(n.nw), s.get(n.ne), s.get(n.sw), s.get(n.se)
	return [4][4]NodeID{
		{nw.nw, nw.ne, ne.nw, ne.ne},
		{nw.sw, nw.se, ne.sw, ne.se},
		{sw.nw, sw.ne, se.nw, se.ne},
		{sw.sw, sw.se, se.sw, se.se},
	}
}

// centreOf returns the centre of the virtual node with the given quadrants,
// without interning that node itself.
func (s *Store) centreOf(nw, ne, sw, se NodeID) NodeID {
	return s.Join(s.get(nw).se, s.get(ne).sw, s.get(sw).ne, s.get(se).nw)
}
