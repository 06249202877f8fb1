package geom

// Point is a single 2-D vertex in BEV centimetres.
type Point struct {
	X, Y float64
}

// Polygon is an ordered, simple vertex list. Ordering (clockwise or
// counter-clockwise) is not significant to Area (which takes the absolute
// value) but IS significant to ClipConvex and Contains, which require the
// clip (or containing) polygon to be wound counter-clockwise.
type Polygon []Point

// PolygonSet is an ordered sequence of polygons, one per open leaf pair,
// as produced by package aperture.
type PolygonSet []Polygon

// Rect is an axis-aligned rectangle, used for cheap bounding-box and
// grid-cell arithmetic before the exact clip runs.
type Rect struct {
	XLo, YLo, XHi, YHi float64
}

// Empty reports whether r has no positive extent.
func (r Rect) Empty() bool {
	return r.XHi <= r.XLo || r.YHi <= r.YLo
}

// ToPolygon returns r as a 4-vertex counter-clockwise polygon.
func (r Rect) ToPolygon() Polygon {
	return Polygon{
		{X: r.XLo, Y: r.YLo},
		{X: r.XHi, Y: r.YLo},
		{X: r.XHi, Y: r.YHi},
		{X: r.XLo, Y: r.YHi},
	}
}

// BoundingBox returns the smallest Rect enclosing p. The zero Rect is
// returned for an empty polygon.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	box := Rect{XLo: p[0].X, XHi: p[0].X, YLo: p[0].Y, YHi: p[0].Y}
	for _, v := range p[1:] {
		if v.X < box.XLo {
			box.XLo = v.X
		}
		if v.X > box.XHi {
			box.XHi = v.X
		}
		if v.Y < box.YLo {
			box.YLo = v.Y
		}
		if v.Y > box.YHi {
			box.YHi = v.Y
		}
	}
	return box
}

// BoundingBox returns the union bounding box of every polygon in the set.
// The zero Rect is returned for an empty set.
func (ps PolygonSet) BoundingBox() Rect {
	if len(ps) == 0 {
		return Rect{}
	}
	box := ps[0].BoundingBox()
	for _, p := range ps[1:] {
		b := p.BoundingBox()
		if b.XLo < box.XLo {
			box.XLo = b.XLo
		}
		if b.XHi > box.XHi {
			box.XHi = b.XHi
		}
		if b.YLo < box.YLo {
			box.YLo = b.YLo
		}
		if b.YHi > box.YHi {
			box.YHi = b.YHi
		}
	}
	return box
}
