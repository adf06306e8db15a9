package hashlife

import "fmt"

// resultKey addresses a memoized forward result: the node advanced by 2^k generations.
type resultKey struct {
	id NodeID
	k  uint8
}

// StoreStats is a snapshot of the store's bookkeeping counters.
type StoreStats struct {
	Nodes       int    // live canonical nodes
	FreeSlots   int    // swept arena slots awaiting reuse
	Results     int    // memoized forward results
	CacheHits   uint64 // forward lookups answered from the result table
	CacheMisses uint64 // forward lookups that had to be computed
	Collections uint64 // completed Collect runs
	Swept       uint64 // nodes reclaimed across all collections
}

// Store is the canonical node store. It interns every node by structural identity,
// so equal regions anywhere in any universe built on the same store share one NodeID,
// and it owns the side table of memoized forward results.
//
// A Store is not safe for concurrent use.
type Store struct {
	nodes  []node
	intern map[nodeKey]NodeID
	free   []NodeID

	results map[resultKey]NodeID
	zeros   []NodeID

	hits        uint64
	misses      uint64
	collections uint64
	swept       uint64
}

// NewStore creates a store holding only the two leaf cells.
func NewStore() *Store {
	s := &Store{
		nodes:   make([]node, 0, 1024),
		intern:  make(map[nodeKey]NodeID, 1024),
		results: make(map[resultKey]NodeID, 1024),
	}
	s.insert(node{level: 0, alive: false})
	s.insert(node{level: 0, alive: true, population: 1})
	s.zeros = append(s.zeros, DeadCell)
	return s
}

// insert interns n, returning the existing ID if an equal node is already present.
func (s *Store) insert(n node) NodeID {
	k := n.key()
	if id, ok := s.intern[k]; ok {
		return id
	}

	var id NodeID
	if last := len(s.free) - 1; last >= 0 {
		id = s.free[last]
		s.free = s.free[:last]
		s.nodes[id] = n
	} else {
		id = NodeID(len(s.nodes))
		s.nodes = append(s.nodes, n)
	}
	s.intern[k] = id
	return id
}

// get returns a copy of the node, panicking on IDs that are not live.
func (s *Store) get(id NodeID) node {
	if int(id) >= len(s.nodes) || s.nodes[id].level == freedLevel {
		panic(fmt.Errorf("%w: id %d", ErrInvalidNode, id))
	}
	return s.nodes[id]
}

// Cell returns the canonical leaf with the given state.
func (s *Store) Cell(alive bool) NodeID {
	if alive {
		return LiveCell
	}
	return DeadCell
}

// Join returns the canonical internal node with the given quadrants.
// All four children must share one level.
func (s *Store) Join(nw, ne, sw, se NodeID) NodeID {
	a, b, c, d := s.get(nw), s.get(ne), s.get(sw), s.get(se)
	if a.level != b.level || a.level != c.level || a.level != d.level {
		panic(fmt.Errorf("%w: %d/%d/%d/%d", ErrLevelMismatch, a.level, b.level, c.level, d.level))
	}
	if a.level >= maxLevel {
		panic(fmt.Errorf("%w: cannot join level %d", ErrInternal, a.level))
	}
	return s.insert(node{
		nw:         nw,
		ne:         ne,
		sw:         sw,
		se:         se,
		level:      a.level + 1,
		population: addPopulation(a.population, b.population, c.population, d.population),
	})
}

// Zero returns the all-dead node of the given level. Zero nodes are pinned and
// survive every collection.
func (s *Store) Zero(level int) NodeID {
	if level < 0 || level > maxLevel {
		panic(fmt.Errorf("%w: zero(%d)", ErrLevelTooSmall, level))
	}
	for len(s.zeros) <= level {
		z := s.zeros[len(s.zeros)-1]
		s.zeros = append(s.zeros, s.Join(z, z, z, z))
	}
	return s.zeros[level]
}

// Node returns a read-only view of id.
func (s *Store) Node(id NodeID) Node {
	return Node{id: id, n: s.get(id)}
}

// Level returns the level of id.
func (s *Store) Level(id NodeID) int {
	return int(s.get(id).level)
}

// Population returns the live cell count of id.
func (s *Store) Population(id NodeID) uint64 {
	return s.get(id).population
}

// Len returns the number of live canonical nodes.
func (s *Store) Len() int {
	return len(s.intern)
}

// Stats returns the current bookkeeping counters.
func (s *Store) Stats() StoreStats {
	return StoreStats{
		Nodes:       len(s.intern),
		FreeSlots:   len(s.free),
		Results:     len(s.results),
		CacheHits:   s.hits,
		CacheMisses: s.misses,
		Collections: s.collections,
		Swept:       s.swept,
	}
}

// ClearResults drops every memoized forward result. Canonical nodes are kept.
func (s *Store) ClearResults() {
	s.results = make(map[resultKey]NodeID, 1024)
}
