package geom

// ClipConvex computes the intersection of subject with the convex clip
// polygon using Sutherland–Hodgman clipping. clip must be convex and
// wound counter-clockwise (the aperture quads and grid cells this package
// is built for always are); subject may be any simple polygon but in this
// module is always itself convex, so the result is convex too.
//
// Stage 1 (Validate): fewer than 3 clip vertices can't bound a region —
// return the empty polygon.
// Stage 2 (Execute): walk each clip edge in turn, keeping the subrange of
// the running polygon that lies on the inside of that edge.
// Stage 3 (Finalize): collinear clip edges never duplicate a vertex,
// since each edge pass drops a vertex equal to the one it just kept, and
// a closing vertex equal to the pass's first one.
//
// Complexity: O(V·W) time, O(V+W) memory, V=len(subject), W=len(clip).
func ClipConvex(subject, clip Polygon) Polygon {
	if len(clip) < 3 || len(subject) < 3 {
		return nil
	}

	output := subject
	for i := 0; i < len(clip); i++ {
		if len(output) == 0 {
			return nil
		}
		edgeA := clip[i]
		edgeB := clip[(i+1)%len(clip)]

		input := output
		output = make(Polygon, 0, len(input)+1)
		keep := func(p Point) {
			if n := len(output); n == 0 || output[n-1] != p {
				output = append(output, p)
			}
		}

		for j := 0; j < len(input); j++ {
			curr := input[j]
			prev := input[(j-1+len(input))%len(input)]

			currInside := isInside(edgeA, edgeB, curr)
			prevInside := isInside(edgeA, edgeB, prev)

			if currInside {
				if !prevInside {
					keep(segmentIntersect(prev, curr, edgeA, edgeB))
				}
				keep(curr)
			} else if prevInside {
				keep(segmentIntersect(prev, curr, edgeA, edgeB))
			}
		}
		if n := len(output); n > 1 && output[n-1] == output[0] {
			output = output[:n-1]
		}
	}

	if len(output) < 3 {
		return nil
	}
	return output
}

// isInside reports whether p lies on the left side of the directed edge
// a->b, i.e. the inside half-plane for a counter-clockwise-wound clip
// polygon.
func isInside(a, b, p Point) bool {
	return (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) >= 0
}

// segmentIntersect returns the point where segment p1-p2 crosses the
// infinite line through edge a-b. Callers only invoke this when the two
// endpoints straddle the edge, so the denominator is never (numerically)
// zero in practice; a defensive check still avoids a NaN escaping into
// the accumulator.
func segmentIntersect(p1, p2, a, b Point) Point {
	dcX, dcY := b.X-a.X, b.Y-a.Y
	dpX, dpY := p2.X-p1.X, p2.Y-p1.Y

	denom := dcX*dpY - dcY*dpX
	if denom == 0 {
		return p1
	}

	n1 := dcX*(p1.Y-a.Y) - dcY*(p1.X-a.X)
	t := -n1 / denom

	return Point{
		X: p1.X + t*dpX,
		Y: p1.Y + t*dpY,
	}
}
