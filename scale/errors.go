package scale

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scale package. Callers match with errors.Is;
// scaleErrorf folds the offending scale/axis pair into every fatal error.
var (
	// ErrUnsupportedScale indicates the from or to Scale is not registered.
	ErrUnsupportedScale = errors.New("scale: unsupported scale conversion")

	// ErrUnknownAxis indicates the axis has no rule under the requested scale.
	ErrUnknownAxis = errors.New("scale: axis not recognised for this scale")
)

// scaleErrorf wraps err with the scale/axis pair that triggered it.
func scaleErrorf(s Scale, a Axis, err error) error {
	return fmt.Errorf("scale %q axis %q: %w", s, a, err)
}
