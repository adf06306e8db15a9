package hashlife

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"
)

// Options configures how a Universe is created.
type Options struct {
	// Store is the canonical node store to build on. Universes sharing a store
	// share canonical nodes and memoized results. Nil creates a private store.
	Store *Store

	// Logger receives debug events about growth and collection.
	// Nil uses slog.Default().
	Logger *slog.Logger

	// CollectThreshold triggers a collection after Advance once the store holds
	// more nodes than this. Zero disables automatic collection. Leave it at zero
	// when several universes share a store: the collection only knows this
	// universe's root.
	CollectThreshold int
}

// Universe is an unbounded Game of Life plane backed by a canonical quadtree.
//
// Coordinates are (i, j) with i the row, growing southward, and j the column,
// growing eastward. A root of level L covers [-2^(L-1), 2^(L-1)) on both axes;
// every cell outside the root is dead.
//
// A Universe is not safe for concurrent use.
type Universe struct {
	store  *Store
	logger *slog.Logger

	root       NodeID
	generation int64

	collectThreshold int
}

// New builds a universe from a dense rows x cols grid. Grid cell cells[r][c]
// is placed at (r - rows/2, c - cols/2). Rows shorter than cols, and missing
// rows, read as dead.
func New(rows, cols int, cells [][]bool, opts Options) (*Universe, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	u := newUniverse(opts)
	level := levelFor(max(1, rows, cols))
	u.root = u.load(rows, cols, cells, level)
	u.logger.Debug("universe loaded",
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("level", level),
		slog.Uint64("population", u.Population()))
	return u, nil
}

// FromRoot wraps an existing node of opts.Store as the root of a new universe
// at generation zero.
func FromRoot(root NodeID, opts Options) *Universe {
	u := newUniverse(opts)
	u.store.get(root)
	u.root = root
	return u
}

func newUniverse(opts Options) *Universe {
	u := &Universe{
		store:            opts.Store,
		logger:           opts.Logger,
		collectThreshold: opts.CollectThreshold,
	}
	if u.store == nil {
		u.store = NewStore()
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	return u
}

// levelFor returns the smallest L with 2^L >= size.
func levelFor(size int) int {
	if size <= 1 {
		return 0
	}
	return bits.Len(uint(size - 1))
}

// load builds the quadtree bottom-up over the 2^level square centred on the origin.
func (u *Universe) load(rows, cols int, cells [][]bool, level int) NodeID {
	alive := func(i, j int64) bool {
		r, c := i+int64(rows/2), j+int64(cols/2)
		if r < 0 || c < 0 || r >= int64(rows) || c >= int64(cols) {
			return false
		}
		if r >= int64(len(cells)) || c >= int64(len(cells[r])) {
			return false
		}
		return cells[r][c]
	}

	// Bounds of the grid in universe coordinates, used to skip empty squares.
	minI, minJ := -int64(rows/2), -int64(cols/2)
	maxI, maxJ := minI+int64(rows), minJ+int64(cols)

	var build func(top, left int64, level int) NodeID
	build = func(top, left int64, level int) NodeID {
		size := int64(1) << level
		if top >= maxI || left >= maxJ || top+size <= minI || left+size <= minJ {
			return u.store.Zero(level)
		}
		if level == 0 {
			return u.store.Cell(alive(top, left))
		}
		half := size / 2
		return u.store.Join(
			build(top, left, level-1),
			build(top, left+half, level-1),
			build(top+half, left, level-1),
			build(top+half, left+half, level-1),
		)
	}

	origin := int64(0)
	if level > 0 {
		origin = -(int64(1) << (level - 1))
	}
	return build(origin, origin, level)
}

// Advance moves the universe n generations forward by composing power-of-two
// jumps, one forward call per set bit of n.
func (u *Universe) Advance(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeGenerations, n)
	}
	if u.generation > math.MaxInt64-n {
		return fmt.Errorf("%w: %d + %d", ErrGenerationOverflow, u.generation, n)
	}
	if n == 0 {
		return nil
	}

	for i := 0; i < bits.Len64(uint64(n)); i++ {
		if n&(1<<i) == 0 {
			continue
		}
		u.grow(i + 2)
		u.root = u.store.Extend(u.root)
		u.root = u.store.forward(u.root, i)
	}
	u.generation += n
	u.trim()

	if u.collectThreshold > 0 && u.store.Len() > u.collectThreshold {
		u.Collect()
	}
	return nil
}

// Step advances the universe by a single generation.
func (u *Universe) Step() error {
	return u.Advance(1)
}

// grow extends the root until it is at least the given level and its outer
// ring is empty, so nothing can reach the boundary during the next jump.
func (u *Universe) grow(level int) {
	level = max(level, 2)
	before := u.Level()
	for u.Level() < level {
		u.root = u.store.Extend(u.root)
	}
	if u.store.PeripheralAlive(u.root) {
		u.root = u.store.Extend(u.root)
	}
	if after := u.Level(); after != before {
		u.logger.Debug("universe extended",
			slog.Int64("generation", u.generation),
			slog.Int("from", before),
			slog.Int("level", after))
	}
}

// trim drops dead borders from the root while keeping every live cell.
func (u *Universe) trim() {
	before := u.Level()
	for u.Level() > 2 && !u.store.PeripheralAlive(u.root) {
		u.root = u.store.Center(u.root)
	}
	if after := u.Level(); after != before {
		u.logger.Debug("universe trimmed",
			slog.Int64("generation", u.generation),
			slog.Int("from", before),
			slog.Int("level", after))
	}
}

// Collect reclaims every node of the store not reachable from this universe's root.
func (u *Universe) Collect() CollectStats {
	stats := u.store.Collect(u.root)
	u.logger.Debug("store collected",
		slog.Int64("generation", u.generation),
		slog.Int("marked", stats.Marked),
		slog.Int("swept", stats.Swept),
		slog.Int("nodes", u.store.Len()))
	return stats
}

// SetLogger replaces the logger; nil selects slog.Default().
func (u *Universe) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	u.logger = logger
}

// Generation returns the number of generations simulated so far.
func (u *Universe) Generation() int64 {
	return u.generation
}

// Root returns the current root node. Callers must treat it as read-only.
func (u *Universe) Root() NodeID {
	return u.root
}

// Store returns the canonical node store backing this universe.
func (u *Universe) Store() *Store {
	return u.store
}

// Level returns the level of the root.
func (u *Universe) Level() int {
	return u.store.Level(u.root)
}

// Population returns the number of live cells.
func (u *Universe) Population() uint64 {
	return u.store.Population(u.root)
}
