package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for the grid package.
var (
	// ErrInvalidDimensions indicates non-positive column or row counts.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrInvalidExtent indicates non-positive physical width or height.
	ErrInvalidExtent = errors.New("grid: width and height must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0,R)/[0,C).
	// This is a programmer error: Get/Set/Add return it rather than
	// silently clamping, and callers that reach it from validated sweep
	// code have a bug, not bad input.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")
)

// gridErrorf wraps err with the offending (row, col) pair.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("grid.%s(%d,%d): %w", method, row, col, err)
}
