package hashlife

import "math"

// NodeID identifies a canonical node within a Store.
type NodeID uint32

// Preallocated leaves. Every Store starts with exactly these two cells.
const (
	// DeadCell is the canonical dead leaf.
	DeadCell NodeID = 0

	// LiveCell is the canonical live leaf.
	LiveCell NodeID = 1
)

// maxLevel bounds the quadtree depth. A level-255 square is far beyond
// anything an int64 generation count can grow a pattern into.
const maxLevel = math.MaxUint8 - 1

// freedLevel marks an arena slot that has been swept and sits on the free list.
const freedLevel = math.MaxUint8

// node is the arena representation of both node variants.
// Leaves have level 0 and use alive; internal nodes use the four children.
type node struct {
	nw, ne, sw, se NodeID
	population     uint64
	level          uint8
	alive          bool
}

// nodeKey is the structural identity of a node. Children are compared by ID,
// which is sound because children are themselves canonical.
type nodeKey struct {
	nw, ne, sw, se NodeID
	level          uint8
	alive          bool
}

func (n *node) key() nodeKey {
	return nodeKey{nw: n.nw, ne: n.ne, sw: n.sw, se: n.se, level: n.level, alive: n.alive}
}

func (n *node) isLeaf() bool {
	return n.level == 0
}

// Node is a read-only view of a canonical node.
type Node struct {
	id NodeID
	n  node
}

// ID returns the node's identifier.
func (v Node) ID() NodeID {
	return v.id
}

// Level returns the size exponent; the node covers a 2^Level square.
func (v Node) Level() int {
	return int(v.n.level)
}

// Population returns the number of live cells in the node's region.
// The count saturates at math.MaxUint64.
func (v Node) Population() uint64 {
	return v.n.population
}

// IsLeaf returns true for level-0 cells.
func (v Node) IsLeaf() bool {
	return v.n.isLeaf()
}

// Alive returns the state of a leaf. Always false for internal nodes.
func (v Node) Alive() bool {
	return v.n.alive
}

// Children returns the four quadrants. Only valid for internal nodes.
func (v Node) Children() (nw, ne, sw, se NodeID) {
	return v.n.nw, v.n.ne, v.n.sw, v.n.se
}

// addPopulation adds populations, saturating instead of wrapping.
func addPopulation(counts ...uint64) uint64 {
	var total uint64
	for _, c := range counts {
		if total > math.MaxUint64-c {
			return math.MaxUint64
		}
		total += c
	}
	return total
}
