package mlc

// Model is the sealed capability the aperture builder needs from an MLC
// description: for each leaf pair, where its centre sits in Y and how
// wide it is, both in millimetres (the aperture builder converts to
// centimetres, the unit the rest of the module's geometry uses).
//
// Model has exactly the method set the integration engine requires; no
// model implementation is expected to grow beyond it.
type Model interface {
	// LeafPairCount returns N, the number of opposing leaf pairs.
	LeafPairCount() int

	// LeafInfo returns the Y centre and width, in millimetres, of leaf
	// pair i. Panics are never used here — callers that pass an
	// out-of-range i get (0, 0) and should check i against
	// LeafPairCount() themselves; sample validation in package fluence
	// is what turns an inconsistent leaf count into a fatal error.
	LeafInfo(i int) (centerMM, widthMM float64)
}
