// Package hashlife provides a memoized quadtree simulator for Conway's Game of Life.
// Identical sub-patterns share one canonical node, and whole power-of-two runs of
// generations are computed by a single cached recursion.
package hashlife

import "errors"

// Construction errors
var (
	// ErrInvalidDimensions indicates that a grid was declared with negative dimensions.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// Advance errors
var (
	// ErrNegativeGenerations indicates a request to advance by a negative number of generations.
	ErrNegativeGenerations = errors.New("negative generation count")

	// ErrGenerationOverflow indicates that the generation counter would overflow.
	ErrGenerationOverflow = errors.New("generation counter overflow")
)

// Precondition errors. These are raised by panics wrapping the sentinel, since
// they can only be caused by a programming error in the caller.
var (
	// ErrLevelTooSmall indicates that a node is too small for the requested operation.
	ErrLevelTooSmall = errors.New("node level too small")

	// ErrExponentOutOfRange indicates a forward exponent outside [0, level-2].
	ErrExponentOutOfRange = errors.New("generation exponent out of range")

	// ErrLevelMismatch indicates that the four children of a join differ in level.
	ErrLevelMismatch = errors.New("child levels differ")

	// ErrInvalidNode indicates an ID that does not name a live node in the store.
	ErrInvalidNode = errors.New("invalid node")

	// ErrInternal indicates an internal consistency error (should not happen).
	ErrInternal = errors.New("internal error")
)
