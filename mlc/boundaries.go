package mlc

// staticModel is the concrete Model shared by every built-in and
// DICOM-derived variant: a precomputed, immutable table of per-leaf
// centre/width pairs in millimetres.
type staticModel struct {
	centerMM []float64
	widthMM  []float64
}

func (m *staticModel) LeafPairCount() int { return len(m.centerMM) }

func (m *staticModel) LeafInfo(i int) (centerMM, widthMM float64) {
	if i < 0 || i >= len(m.centerMM) {
		return 0, 0
	}
	return m.centerMM[i], m.widthMM[i]
}

// FromBoundaries builds a Model from an explicit boundary array of
// length N+1, the DICOM LeafPositionBoundaries convention:
//
//	centerMM[i] = (bounds[i]+bounds[i+1]) / 2
//	widthMM[i]  = bounds[i+1] - bounds[i]
//
// Boundaries must be strictly increasing (so every width is positive) and
// there must be at least 2 of them; ErrTooFewBoundaries and
// ErrNonIncreasingBoundaries report violations.
func FromBoundaries(bounds []float64) (Model, error) {
	if len(bounds) < 2 {
		return nil, ErrTooFewBoundaries
	}

	n := len(bounds) - 1
	centers := make([]float64, n)
	widths := make([]float64, n)
	for i := 0; i < n; i++ {
		if bounds[i+1] <= bounds[i] {
			return nil, ErrNonIncreasingBoundaries
		}
		widths[i] = bounds[i+1] - bounds[i]
		centers[i] = (bounds[i] + bounds[i+1]) / 2
	}

	return &staticModel{centerMM: centers, widthMM: widths}, nil
}

// boundariesFromWidths expands a run-length width spec into a boundary
// array starting at startMM, used by the built-in Millennium120/HD120
// constructors below so their leaf tables are built through the same
// FromBoundaries path as a DICOM-derived model.
func boundariesFromWidths(startMM float64, widths []float64) []float64 {
	bounds := make([]float64, len(widths)+1)
	bounds[0] = startMM
	for i, w := range widths {
		bounds[i+1] = bounds[i] + w
	}
	return bounds
}
