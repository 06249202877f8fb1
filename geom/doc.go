// Package geom provides the 2-D polygon primitives the fluence engine
// needs: signed area, rigid rotation about the origin, and Sutherland–
// Hodgman clipping of a convex subject polygon against a convex clip
// polygon.
//
// What:
//
//   - Point, Polygon: plain vertex lists in beam's-eye-view centimetres.
//   - Area: absolute value of the shoelace signed-area sum.
//   - Rotate: rigid rotation of every vertex about the BEV origin.
//   - ClipConvex: Sutherland–Hodgman intersection of two convex polygons.
//
// Why:
//
//   - Every sample in a fluence sweep clips an aperture rectangle against
//     every grid cell it touches; this package is the hot loop the rest
//     of the module calls millions of times per sweep.
//
// Complexity:
//
//   - Area:       O(V), Memory: O(1).
//   - Rotate:     O(V), Memory: O(V).
//   - ClipConvex: O(V·W), Memory: O(V+W), V=len(subject), W=len(clip).
//
// Numerics:
//
//   - All arithmetic is float64, since Sutherland–Hodgman is numerically
//     delicate near grazing edges.
//   - Areas below Epsilon are treated as exactly zero.
package geom
