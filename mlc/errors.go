package mlc

import "errors"

// ErrTooFewBoundaries indicates FromBoundaries got fewer than 2 values,
// which cannot describe even a single leaf pair.
var ErrTooFewBoundaries = errors.New("mlc: need at least 2 boundaries for 1 leaf pair")

// ErrNonIncreasingBoundaries indicates a boundary array that is not
// strictly increasing, which would give a leaf a zero or negative width.
var ErrNonIncreasingBoundaries = errors.New("mlc: boundaries must be strictly increasing")
