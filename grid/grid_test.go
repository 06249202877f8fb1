package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rtfluence/fluence/geom"
	"github.com/rtfluence/fluence/grid"
)

func TestNew_Validation(t *testing.T) {
	_, err := grid.New(0, 0, 10, 10, 0, 5)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.New(0, 0, 0, 10, 5, 5)
	require.ErrorIs(t, err, grid.ErrInvalidExtent)
}

func TestNew_ZeroInitialized(t *testing.T) {
	g, err := grid.New(-10, -10, 20, 20, 100, 100)
	require.NoError(t, err)
	require.Equal(t, 0.0, g.Sum())

	v, err := g.Get(50, 50)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestGetSetAdd_Bounds(t *testing.T) {
	g, err := grid.New(0, 0, 10, 10, 10, 10)
	require.NoError(t, err)

	require.NoError(t, g.Set(3, 4, 7))
	v, err := g.Get(3, 4)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	require.NoError(t, g.Add(3, 4, 1))
	v, _ = g.Get(3, 4)
	require.Equal(t, 8.0, v)

	_, err = g.Get(-1, 0)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
	require.ErrorIs(t, g.Set(10, 0, 1), grid.ErrIndexOutOfBounds)
	require.ErrorIs(t, g.Add(0, 10, 1), grid.ErrIndexOutOfBounds)
}

func TestBoundsOfCell(t *testing.T) {
	g, err := grid.New(-5, -5, 10, 10, 10, 10)
	require.NoError(t, err)

	box := g.BoundsOfCell(0, 0)
	require.Equal(t, geom.Rect{XLo: -5, YLo: -5, XHi: -4, YHi: -4}, box)

	box = g.BoundsOfCell(9, 9)
	require.InDelta(t, 4.0, box.XLo, 1e-9)
	require.InDelta(t, 5.0, box.XHi, 1e-9)
}

func TestCellOfPoint(t *testing.T) {
	g, err := grid.New(-5, -5, 10, 10, 10, 10)
	require.NoError(t, err)

	r, c := g.CellOfPoint(-5, -5)
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)

	r, c = g.CellOfPoint(0, 0)
	require.Equal(t, 5, r)
	require.Equal(t, 5, c)
}

func TestClampCellRange_Outside(t *testing.T) {
	g, err := grid.New(0, 0, 10, 10, 10, 10)
	require.NoError(t, err)

	rLo, rHi, cLo, cHi := g.ClampCellRange(geom.Rect{XLo: 20, YLo: 20, XHi: 30, YHi: 30})
	require.Equal(t, rLo, rHi)
	require.Equal(t, cLo, cHi)
}

func TestClampCellRange_PartialOverlap(t *testing.T) {
	g, err := grid.New(0, 0, 10, 10, 10, 10)
	require.NoError(t, err)

	rLo, rHi, cLo, cHi := g.ClampCellRange(geom.Rect{XLo: -5, YLo: -5, XHi: 3, YHi: 3})
	require.Equal(t, 0, rLo)
	require.Equal(t, 0, cLo)
	require.Equal(t, 4, rHi)
	require.Equal(t, 4, cHi)
}

func TestForEach_VisitsEveryCellOnce(t *testing.T) {
	g, err := grid.New(0, 0, 4, 4, 2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 5))

	count := 0
	var sum float64
	g.ForEach(func(row, col int, v float64) {
		count++
		sum += v
	})
	require.Equal(t, 4, count)
	require.Equal(t, 5.0, sum)
}
