package fluence

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fluence package. Every sample-validation error
// is one of these, wrapped with sweepErrorf to name the offending sample
// index; errors from a Stream's At are wrapped the same way.
var (
	// ErrInvalidSample indicates a NaN/Inf axis value or leaf position.
	ErrInvalidSample = errors.New("fluence: invalid sample")

	// ErrMLCModelMismatch indicates a sample whose MLC model's
	// LeafPairCount differs from the first sample's.
	ErrMLCModelMismatch = errors.New("fluence: leaf count does not match MLC model")

	// ErrNegativeDeltaMU indicates ΔMU < 0, violating the monotone-MU
	// contract.
	ErrNegativeDeltaMU = errors.New("fluence: delta MU must be >= 0")
)

// sweepErrorf wraps err with the sample index that triggered it.
func sweepErrorf(sampleIdx int, err error) error {
	return fmt.Errorf("fluence: sample %d: %w", sampleIdx, err)
}
