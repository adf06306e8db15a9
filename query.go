package hashlife

import "math"

// Rect is an axis-aligned block of cells: rows [Top, Top+Rows), columns [Left, Left+Cols).
type Rect struct {
	Top, Left  int64
	Rows, Cols int64
}

// Contains reports whether (i, j) lies inside r.
func (r Rect) Contains(i, j int64) bool {
	return i >= r.Top && i-r.Top < r.Rows && j >= r.Left && j-r.Left < r.Cols
}

// quad is a node given by its four children, which need not be interned as a whole.
type quad struct {
	level int
	kids  [4]NodeID // nw, ne, sw, se
}

// addressable returns a view of the root whose level is at most 64, so that
// every coordinate and offset fits in an int64. Larger roots are narrowed to
// their centres, which still cover the whole int64 plane.
func (u *Universe) addressable() (quad, bool) {
	n := u.store.get(u.root)
	if n.isLeaf() {
		return quad{}, false
	}
	q := quad{level: int(n.level), kids: [4]NodeID{n.nw, n.ne, n.sw, n.se}}
	for q.level > 64 {
		q = quad{level: q.level - 1, kids: [4]NodeID{
			u.store.get(q.kids[0]).se,
			u.store.get(q.kids[1]).sw,
			u.store.get(q.kids[2]).ne,
			u.store.get(q.kids[3]).nw,
		}}
	}
	return q, true
}

// Get returns the state of the cell at (i, j). Cells outside the root are dead.
// Get never modifies the store.
func (u *Universe) Get(i, j int64) bool {
	q, ok := u.addressable()
	if !ok {
		return i == 0 && j == 0 && u.store.get(u.root).alive
	}

	if q.level < 64 {
		half := int64(1) << (q.level - 1)
		if i < -half || i >= half || j < -half || j >= half {
			return false
		}
	}

	for {
		idx := 0
		if i >= 0 {
			idx += 2
		}
		if j >= 0 {
			idx++
		}
		child := u.store.get(q.kids[idx])
		if child.isLeaf() {
			return child.alive
		}
		if child.population == 0 {
			return false
		}

		offset := int64(1) << (q.level - 2)
		if i < 0 {
			i += offset
		} else {
			i -= offset
		}
		if j < 0 {
			j += offset
		} else {
			j -= offset
		}
		q = quad{level: q.level - 1, kids: [4]NodeID{child.nw, child.ne, child.sw, child.se}}
	}
}

// LiveCells calls fn for every live cell in quadtree order, stopping early
// when fn returns false. Cells whose coordinates do not fit in an int64 are
// not reported.
func (u *Universe) LiveCells(fn func(i, j int64) bool) {
	q, ok := u.addressable()
	if !ok {
		if u.store.get(u.root).alive {
			fn(0, 0)
		}
		return
	}

	// top/left of the whole view; at level 64 this is exactly math.MinInt64.
	var origin int64 = math.MinInt64
	if q.level < 64 {
		origin = -(int64(1) << (q.level - 1))
	}

	var walk func(id NodeID, level int, top, left int64) bool
	walk = func(id NodeID, level int, top, left int64) bool {
		n := u.store.get(id)
		if n.population == 0 {
			return true
		}
		if n.isLeaf() {
			return fn(top, left)
		}
		half := int64(1) << (level - 1)
		return walk(n.nw, level-1, top, left) &&
			walk(n.ne, level-1, top, left+half) &&
			walk(n.sw, level-1, top+half, left) &&
			walk(n.se, level-1, top+half, left+half)
	}

	var half int64 = math.MinInt64 // 2^63 wraps; origin+half is still 0
	if q.level < 64 {
		half = int64(1) << (q.level - 1)
	}
	_ = walk(q.kids[0], q.level-1, origin, origin) &&
		walk(q.kids[1], q.level-1, origin, origin+half) &&
		walk(q.kids[2], q.level-1, origin+half, origin) &&
		walk(q.kids[3], q.level-1, origin+half, origin+half)
}

// BoundingBox returns the smallest Rect holding every live cell, and false if
// the universe is empty.
func (u *Universe) BoundingBox() (Rect, bool) {
	var minI, minJ int64 = math.MaxInt64, math.MaxInt64
	var maxI, maxJ int64 = math.MinInt64, math.MinInt64
	found := false
	u.LiveCells(func(i, j int64) bool {
		found = true
		minI, maxI = min(minI, i), max(maxI, i)
		minJ, maxJ = min(minJ, j), max(maxJ, j)
		return true
	})
	if !found {
		return Rect{}, false
	}
	return Rect{Top: minI, Left: minJ, Rows: maxI - minI + 1, Cols: maxJ - minJ + 1}, true
}
