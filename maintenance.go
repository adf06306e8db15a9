package hashlife

// CollectStats contains statistics from a collection run.
type CollectStats struct {
	Marked         int // nodes kept alive
	Swept          int // nodes reclaimed
	ResultsDropped int // memoized results whose node was reclaimed
}

// Collect reclaims every node that is not reachable from roots. Reachability
// follows children and memoized forward results; the leaves and the zero nodes
// are always kept. IDs of reclaimed nodes must not be used afterwards, so every
// root still in use (including those of other universes sharing the store)
// has to be passed in.
func (s *Store) Collect(roots ...NodeID) CollectStats {
	marked := make([]bool, len(s.nodes))

	stack := make([]NodeID, 0, 64)
	stack = append(stack, DeadCell, LiveCell)
	stack = append(stack, s.zeros...)
	stack = append(stack, roots...)

	var stats CollectStats
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if marked[id] {
			continue
		}
		n := s.get(id)
		marked[id] = true
		stats.Marked++

		if n.isLeaf() {
			continue
		}
		stack = append(stack, n.nw, n.ne, n.sw, n.se)
		for k := 0; k+2 <= int(n.level); k++ {
			if r, ok := s.results[resultKey{id: id, k: uint8(k)}]; ok {
				stack = append(stack, r)
			}
		}
	}

	for id := range s.nodes {
		n := &s.nodes[id]
		if marked[id] || n.level == freedLevel {
			continue
		}
		delete(s.intern, n.key())
		*n = node{level: freedLevel}
		s.free = append(s.free, NodeID(id))
		stats.Swept++
	}

	for key := range s.results {
		if !marked[key.id] {
			delete(s.results, key)
			stats.ResultsDropped++
		}
	}

	s.collections++
	s.swept += uint64(stats.Swept)
	return stats
}
