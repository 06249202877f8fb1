// Package mlc describes the geometry of a multi-leaf collimator: the
// per-leaf-pair centre and width the aperture builder needs to turn a
// (bank, leaf-index) position pair into a rectangle.
//
// What:
//
//   - Model: a sealed capability, LeafInfo(i) + LeafPairCount(), with no
//     inheritance — every concrete model satisfies the same two methods.
//   - Millennium120: the 120-leaf Varian model (10/40/10 outer/central/outer
//     pairs at 10mm/5mm/10mm widths).
//   - HD120: the 120-leaf high-definition model (28/32 outer/central pairs
//     at 5mm/2.5mm).
//   - FromBoundaries: the DICOM-derived model, built from an explicit
//     N+1-length boundary array.
//
// Invariant: widths are strictly positive, and consecutive leaf centres
// differ by the average of the two adjacent widths (leaves abut without
// gaps or overlap). FromBoundaries enforces this by construction; the two
// hand-built models are covered by TestMillennium120_Invariant and
// TestHD120_Invariant.
package mlc
