// Package aperture builds the set of convex polygons describing a linac's
// open field for one machine state: the intersection of the jaw
// rectangle with the union of per-leaf-pair openings, rotated into beam's
// eye view by the collimator angle.
//
// Build takes a Sample — a minimal, locally-declared interface satisfied
// structurally by fluence.Sample, so this package never imports package
// fluence and the two packages don't form an import cycle.
package aperture
