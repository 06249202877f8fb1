package logsnap

import (
	"github.com/rtfluence/fluence"
	"github.com/rtfluence/fluence/mlc"
	"github.com/rtfluence/fluence/scale"
)

// Source holds a decoded trajectory log (or a sub-beam subrange of one)
// and yields a Stream per record type, satisfying fluence.Source so a
// log can be handed straight to fluence.CreateFluence.
type Source struct {
	snapshots   []Snapshot
	model       mlc.Model
	registry    *scale.Registry
	nativeScale scale.Scale
	baseMU      float64
}

// NewSource wraps snapshots recorded in nativeScale, read back through
// registry against model.
func NewSource(snapshots []Snapshot, model mlc.Model, registry *scale.Registry, nativeScale scale.Scale) *Source {
	return &Source{
		snapshots:   snapshots,
		model:       model,
		registry:    registry,
		nativeScale: nativeScale,
	}
}

// SubBeam returns a Source over the snapshot subrange [lo, hi),
// clamped to the log's bounds — the contiguous portion of a trajectory
// log corresponding to a single planned beam. The sub-beam's first ΔMU
// is measured against the counter value just before the subrange, so no
// MU delivered by earlier beams leaks into it.
func (s *Source) SubBeam(lo, hi int) *Source {
	if lo < 0 {
		lo = 0
	}
	if hi > len(s.snapshots) {
		hi = len(s.snapshots)
	}
	if lo > hi {
		lo = hi
	}
	baseMU := s.baseMU
	if lo > 0 {
		baseMU = s.snapshots[lo-1].MU
	}
	return &Source{
		snapshots:   s.snapshots[lo:hi],
		model:       s.model,
		registry:    s.registry,
		nativeScale: s.nativeScale,
		baseMU:      baseMU,
	}
}

// Samples returns the Stream for the requested record family.
func (s *Source) Samples(rt fluence.RecordType) (fluence.Stream, error) {
	stream := NewStream(s.snapshots, s.model, s.registry, s.nativeScale, rt)
	stream.baseMU = s.baseMU
	return stream, nil
}
