package mlc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rtfluence/fluence/mlc"
)

func assertAbutment(t *testing.T, m mlc.Model) {
	t.Helper()
	n := m.LeafPairCount()
	require.Greater(t, n, 0)

	for i := 0; i < n; i++ {
		_, w := m.LeafInfo(i)
		require.Greater(t, w, 0.0, "leaf %d width must be strictly positive", i)
	}
	for i := 0; i < n-1; i++ {
		c0, w0 := m.LeafInfo(i)
		c1, w1 := m.LeafInfo(i + 1)
		require.InDelta(t, (w0+w1)/2, c1-c0, 1e-9, "leaves %d/%d must abut without gap or overlap", i, i+1)
	}
}

func TestMillennium120_Invariant(t *testing.T) {
	m := mlc.Millennium120()
	require.Equal(t, 60, m.LeafPairCount())
	assertAbutment(t, m)

	c0, w0 := m.LeafInfo(0)
	require.InDelta(t, 10.0, w0, 1e-9)
	require.InDelta(t, -195.0, c0, 1e-9)

	cMid, wMid := m.LeafInfo(30)
	require.InDelta(t, 5.0, wMid, 1e-9)
	require.InDelta(t, 2.5, cMid, 1e-9)
}

func TestHD120_Invariant(t *testing.T) {
	m := mlc.HD120()
	require.Equal(t, 60, m.LeafPairCount())
	assertAbutment(t, m)

	cMid, wMid := m.LeafInfo(30)
	require.InDelta(t, 2.5, wMid, 1e-9)
	require.InDelta(t, 1.25, cMid, 1e-9)
}

func TestFromBoundaries(t *testing.T) {
	m, err := mlc.FromBoundaries([]float64{-10, -5, 0, 5, 10})
	require.NoError(t, err)
	require.Equal(t, 4, m.LeafPairCount())
	assertAbutment(t, m)

	c, w := m.LeafInfo(0)
	require.InDelta(t, -7.5, c, 1e-9)
	require.InDelta(t, 5.0, w, 1e-9)
}

func TestFromBoundaries_TooFew(t *testing.T) {
	_, err := mlc.FromBoundaries([]float64{0})
	require.ErrorIs(t, err, mlc.ErrTooFewBoundaries)

	_, err = mlc.FromBoundaries(nil)
	require.ErrorIs(t, err, mlc.ErrTooFewBoundaries)
}

func TestFromBoundaries_NonIncreasing(t *testing.T) {
	_, err := mlc.FromBoundaries([]float64{0, 5, 5, 10})
	require.ErrorIs(t, err, mlc.ErrNonIncreasingBoundaries)

	_, err = mlc.FromBoundaries([]float64{0, 5, 3})
	require.ErrorIs(t, err, mlc.ErrNonIncreasingBoundaries)
}

func TestLeafInfo_OutOfRange(t *testing.T) {
	m := mlc.Millennium120()
	c, w := m.LeafInfo(-1)
	require.Zero(t, c)
	require.Zero(t, w)

	c, w = m.LeafInfo(m.LeafPairCount())
	require.Zero(t, c)
	require.Zero(t, w)
}
