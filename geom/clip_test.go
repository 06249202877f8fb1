package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rtfluence/fluence/geom"
)

func square(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}
}

func TestClipConvex_FullOverlap(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(0, 0, 10, 10)

	got := geom.ClipConvex(a, b)
	require.InDelta(t, 100.0, geom.Area(got), 1e-9)
}

func TestClipConvex_PartialOverlap(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)

	got := geom.ClipConvex(a, b)
	require.InDelta(t, 25.0, geom.Area(got), 1e-9)
}

func TestClipConvex_NoOverlap(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(5, 5, 6, 6)

	got := geom.ClipConvex(a, b)
	require.Equal(t, 0.0, geom.Area(got))
}

func TestClipConvex_FewerThanThreeVertices(t *testing.T) {
	require.Nil(t, geom.ClipConvex(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}, square(0, 0, 1, 1)))
	require.Nil(t, geom.ClipConvex(square(0, 0, 1, 1), nil))
}

func TestClipConvex_SubjectContainsClip(t *testing.T) {
	a := square(-10, -10, 10, 10)
	b := square(-1, -1, 1, 1)

	got := geom.ClipConvex(a, b)
	require.InDelta(t, 4.0, geom.Area(got), 1e-9)
}

func TestArea_DegenerateBelowEpsilon(t *testing.T) {
	// side 1e-7 -> area 1e-14, below Epsilon (1e-12) -> clamped to exactly 0.
	tiny := geom.Polygon{{X: 0, Y: 0}, {X: 1e-7, Y: 0}, {X: 1e-7, Y: 1e-7}, {X: 0, Y: 1e-7}}
	require.Equal(t, 0.0, geom.Area(tiny))

	require.Equal(t, 0.0, geom.Area(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}})) // fewer than 3 vertices
}

func TestRotate_ZeroDegreesIsIdentity(t *testing.T) {
	a := square(-5, -5, 5, 5)
	got := geom.Rotate(a, 0)
	for i := range a {
		require.InDelta(t, a[i].X, got[i].X, 1e-9)
		require.InDelta(t, a[i].Y, got[i].Y, 1e-9)
	}
}

func TestRotate_PreservesArea(t *testing.T) {
	a := square(-5, -5, 5, 5)
	got := geom.Rotate(a, 37.5)
	require.InDelta(t, geom.Area(a), geom.Area(got), 1e-9)
}

func TestRotate_90Degrees(t *testing.T) {
	p := geom.Polygon{{X: 1, Y: 0}}
	got := geom.Rotate(p, 90)
	require.InDelta(t, 0, got[0].X, 1e-9)
	require.InDelta(t, 1, got[0].Y, 1e-9)
}

func TestRect_BoundingBoxAndEmpty(t *testing.T) {
	p := geom.Polygon{{X: -2, Y: 3}, {X: 4, Y: -1}, {X: 1, Y: 7}}
	box := p.BoundingBox()
	require.Equal(t, geom.Rect{XLo: -2, YLo: -1, XHi: 4, YHi: 7}, box)

	ps := geom.PolygonSet{square(0, 0, 1, 1), square(5, 5, 6, 6)}
	union := ps.BoundingBox()
	require.Equal(t, geom.Rect{XLo: 0, YLo: 0, XHi: 6, YHi: 6}, union)

	require.True(t, geom.Rect{}.Empty())
	require.False(t, geom.Rect{XLo: 0, YLo: 0, XHi: 1, YHi: 1}.Empty())
}

func TestClipConvex_GrazingEdgeNumericStability(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(10, 0, 20, 10) // touches edge-to-edge, zero-width overlap

	got := geom.ClipConvex(a, b)
	area := geom.Area(got)
	require.False(t, math.IsNaN(area))
	require.Equal(t, 0.0, area)
}
