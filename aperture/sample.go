package aperture

import (
	"github.com/rtfluence/fluence/mlc"
	"github.com/rtfluence/fluence/scale"
)

// Sample is the subset of fluence.Sample this package needs to build an
// aperture: geometry only, nothing about MU or beam state. Any type
// satisfying fluence.Sample satisfies this interface too, so Build takes
// a fluence.Sample directly without this package importing package
// fluence — that import would close a cycle, since package fluence's
// integrator calls Build.
type Sample interface {
	MLCModel() mlc.Model
	X1() float64
	X2() float64
	Y1() float64
	Y2() float64
	Gantry() float64
	Collimator() float64
	LeafPosition(bank scale.Bank, leaf int) float64
}
