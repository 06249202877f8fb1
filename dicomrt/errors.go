package dicomrt

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a Stream.At call outside [0, Len()).
var ErrIndexOutOfRange = errors.New("dicomrt: index out of range")

// ErrTooFewControlPoints indicates fewer than two control points, which
// cannot define an interpolation interval.
var ErrTooFewControlPoints = errors.New("dicomrt: need at least two control points")

// ErrInvalidCPDelta indicates cpDelta outside (0, 1].
var ErrInvalidCPDelta = errors.New("dicomrt: cpDelta must be in (0, 1]")

// ErrLeafCountMismatch indicates a control point's leaf-position slices
// don't match the beam's MLC model leaf-pair count.
var ErrLeafCountMismatch = errors.New("dicomrt: leaf position count does not match MLC model")

// ErrBeamNotFound indicates the requested beam number is absent from the
// plan's beam sequence.
var ErrBeamNotFound = errors.New("dicomrt: beam not found in plan")

// ErrMissingElement indicates a required DICOM element was absent from
// the dataset.
var ErrMissingElement = errors.New("dicomrt: required element missing")

func dicomrtErrorf(idx int, err error) error {
	return fmt.Errorf("dicomrt: control point %d: %w", idx, err)
}
