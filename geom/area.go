package geom

import "math"

// Epsilon is the degeneracy floor: intersection areas below it are
// indistinguishable from rounding noise and treated as exactly zero.
const Epsilon = 1e-12

// Area returns the absolute area of p via the shoelace formula:
//
//	½ · |Σ (x_k·y_{k+1} − x_{k+1}·y_k)|
//
// Polygons with fewer than 3 vertices have area 0. Results below Epsilon
// are clamped to exactly 0 to absorb grazing-edge rounding noise from
// ClipConvex.
// Complexity: O(V), Memory: O(1).
func Area(p Polygon) float64 {
	n := len(p)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	a := math.Abs(sum) / 2

	if a < Epsilon {
		return 0
	}
	return a
}

// Rotate returns a copy of p with every vertex rotated by degDeg degrees
// counter-clockwise about the BEV origin (0,0). This is the collimator
// rotation step of the aperture builder.
// Complexity: O(V), Memory: O(V).
func Rotate(p Polygon, degDeg float64) Polygon {
	rad := degDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
		}
	}
	return out
}
