package aperture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rtfluence/fluence/aperture"
	"github.com/rtfluence/fluence/mlc"
	"github.com/rtfluence/fluence/scale"
)

type fakeSample struct {
	model              mlc.Model
	x1, x2, y1, y2     float64
	gantry, collimator float64
	leaf0, leaf1       []float64
}

func (s fakeSample) MLCModel() mlc.Model { return s.model }
func (s fakeSample) X1() float64         { return s.x1 }
func (s fakeSample) X2() float64         { return s.x2 }
func (s fakeSample) Y1() float64         { return s.y1 }
func (s fakeSample) Y2() float64         { return s.y2 }
func (s fakeSample) Gantry() float64     { return s.gantry }
func (s fakeSample) Collimator() float64 { return s.collimator }
func (s fakeSample) LeafPosition(bank scale.Bank, leaf int) float64 {
	if bank == scale.Bank0 {
		return s.leaf0[leaf]
	}
	return s.leaf1[leaf]
}

// twoLeafModel has boundaries in mm at [-100,0,100], giving pair 0 a
// [-10,0] cm Y-band and pair 1 a [0,10] cm Y-band — wide enough that the
// jaw clipping in the tests below is the only thing that discards them.
func twoLeafModel(t *testing.T) mlc.Model {
	t.Helper()
	m, err := mlc.FromBoundaries([]float64{-100, 0, 100})
	require.NoError(t, err)
	return m
}

func TestBuild_JawClippedOpenField(t *testing.T) {
	s := fakeSample{
		model: twoLeafModel(t),
		x1:    -5, x2: 5, y1: -5, y2: 5,
		leaf0: []float64{-20, -20}, leaf1: []float64{20, 20},
	}
	polys, jaw, err := aperture.Build(s)
	require.NoError(t, err)
	require.Len(t, polys, 2)
	require.Len(t, jaw, 4)
}

func TestBuild_LeafPairOutsideJawY_Discarded(t *testing.T) {
	s := fakeSample{
		model: twoLeafModel(t),
		x1:    -5, x2: 5, y1: 1, y2: 5, // only the upper leaf pair's band overlaps
		leaf0: []float64{-20, -20}, leaf1: []float64{20, 20},
	}
	polys, _, err := aperture.Build(s)
	require.NoError(t, err)
	require.Len(t, polys, 1)
}

func TestBuild_ClosedLeafPair_Discarded(t *testing.T) {
	s := fakeSample{
		model: twoLeafModel(t),
		x1:    -5, x2: 5, y1: -5, y2: 5,
		leaf0: []float64{0, -20}, leaf1: []float64{0, 20}, // first pair fully closed
	}
	polys, _, err := aperture.Build(s)
	require.NoError(t, err)
	require.Len(t, polys, 1)
}

func TestBuild_ReversedLeafOrder_Normalised(t *testing.T) {
	s := fakeSample{
		model: twoLeafModel(t),
		x1:    -5, x2: 5, y1: -5, y2: 5,
		leaf0: []float64{3, -20}, leaf1: []float64{-3, 20}, // bank0 > bank1
	}
	polys, _, err := aperture.Build(s)
	require.NoError(t, err)
	require.Len(t, polys, 2)
}

func TestBuild_CollimatorRotation_RotatesVertices(t *testing.T) {
	flat := fakeSample{
		model: twoLeafModel(t),
		x1:    -5, x2: 5, y1: -5, y2: 5,
		leaf0: []float64{-20, -20}, leaf1: []float64{20, 20},
	}
	rotated := flat
	rotated.collimator = 90

	flatPolys, _, err := aperture.Build(flat)
	require.NoError(t, err)
	rotatedPolys, _, err := aperture.Build(rotated)
	require.NoError(t, err)
	require.NotEqual(t, flatPolys, rotatedPolys)
}
