package logsnap

import (
	"github.com/rtfluence/fluence"
	"github.com/rtfluence/fluence/mlc"
	"github.com/rtfluence/fluence/scale"
)

// Stream adapts a decoded trajectory-log snapshot sequence to
// fluence.Stream. Every axis is converted to IEC 61217 the moment At is
// called; the returned fluence.Sample's accessors are plain field reads
// after that, since the fluence.Sample contract has no room for a
// conversion error once a Sample exists.
type Stream struct {
	snapshots   []Snapshot
	model       mlc.Model
	registry    *scale.Registry
	nativeScale scale.Scale
	recordType  fluence.RecordType

	// baseMU is the cumulative MU counter just before the first
	// snapshot: 0 for a whole log, the preceding snapshot's counter for
	// a sub-beam subrange (see Source.SubBeam).
	baseMU float64
}

// NewStream builds a Stream over snapshots, recorded in nativeScale,
// read back through registry, selecting recordType's column family.
func NewStream(snapshots []Snapshot, model mlc.Model, registry *scale.Registry, nativeScale scale.Scale, recordType fluence.RecordType) *Stream {
	return &Stream{
		snapshots:   snapshots,
		model:       model,
		registry:    registry,
		nativeScale: nativeScale,
		recordType:  recordType,
	}
}

// Len returns the number of snapshots.
func (s *Stream) Len() int { return len(s.snapshots) }

// At converts and returns the sample at index i.
func (s *Stream) At(i int) (fluence.Sample, error) {
	if i < 0 || i >= len(s.snapshots) {
		return nil, logsnapErrorf(i, ErrIndexOutOfRange)
	}

	snap := s.snapshots[i]
	raw := snap.Expected
	if s.recordType == fluence.Actual {
		raw = snap.Actual
	}

	pairCount := s.model.LeafPairCount()
	if len(raw.LeafBank0) != pairCount || len(raw.LeafBank1) != pairCount {
		return nil, logsnapErrorf(i, ErrLeafCountMismatch)
	}

	cv := &convertedSample{model: s.model}

	var err error
	if cv.x1, err = s.registry.Convert(s.nativeScale, scale.IEC61217, scale.AxisX1, raw.X1); err != nil {
		return nil, logsnapErrorf(i, err)
	}
	if cv.x2, err = s.registry.Convert(s.nativeScale, scale.IEC61217, scale.AxisX2, raw.X2); err != nil {
		return nil, logsnapErrorf(i, err)
	}
	if cv.y1, err = s.registry.Convert(s.nativeScale, scale.IEC61217, scale.AxisY1, raw.Y1); err != nil {
		return nil, logsnapErrorf(i, err)
	}
	if cv.y2, err = s.registry.Convert(s.nativeScale, scale.IEC61217, scale.AxisY2, raw.Y2); err != nil {
		return nil, logsnapErrorf(i, err)
	}
	if cv.x1 > cv.x2 {
		cv.x1, cv.x2 = cv.x2, cv.x1
	}
	if cv.y1 > cv.y2 {
		cv.y1, cv.y2 = cv.y2, cv.y1
	}

	if cv.gantry, err = s.registry.Convert(s.nativeScale, scale.IEC61217, scale.AxisGantry, raw.Gantry); err != nil {
		return nil, logsnapErrorf(i, err)
	}
	if cv.collimator, err = s.registry.Convert(s.nativeScale, scale.IEC61217, scale.AxisCollimator, raw.Collimator); err != nil {
		return nil, logsnapErrorf(i, err)
	}

	cv.leafBank0 = make([]float64, pairCount)
	cv.leafBank1 = make([]float64, pairCount)
	for leaf := 0; leaf < pairCount; leaf++ {
		if cv.leafBank0[leaf], err = s.registry.ConvertLeaf(s.nativeScale, scale.IEC61217, scale.Bank0, raw.LeafBank0[leaf]); err != nil {
			return nil, logsnapErrorf(i, err)
		}
		if cv.leafBank1[leaf], err = s.registry.ConvertLeaf(s.nativeScale, scale.IEC61217, scale.Bank1, raw.LeafBank1[leaf]); err != nil {
			return nil, logsnapErrorf(i, err)
		}
	}

	// The MU counter is cumulative; the first snapshot's delta is
	// measured against baseMU, the counter value just before the stream
	// begins.
	if i == 0 {
		cv.deltaMU = snap.MU - s.baseMU
	} else {
		cv.deltaMU = snap.MU - s.snapshots[i-1].MU
	}
	cv.beamHold = snap.BeamHold

	return cv, nil
}

// convertedSample is a fully-IEC-converted snapshot, satisfying
// fluence.Sample with plain field reads.
type convertedSample struct {
	model                mlc.Model
	x1, x2, y1, y2       float64
	gantry, collimator   float64
	leafBank0, leafBank1 []float64
	deltaMU              float64
	beamHold             bool
}

func (c *convertedSample) MLCModel() mlc.Model { return c.model }
func (c *convertedSample) X1() float64         { return c.x1 }
func (c *convertedSample) X2() float64         { return c.x2 }
func (c *convertedSample) Y1() float64         { return c.y1 }
func (c *convertedSample) Y2() float64         { return c.y2 }
func (c *convertedSample) Gantry() float64     { return c.gantry }
func (c *convertedSample) Collimator() float64 { return c.collimator }
func (c *convertedSample) DeltaMU() float64    { return c.deltaMU }
func (c *convertedSample) IsBeamHold() bool    { return c.beamHold }

func (c *convertedSample) LeafPosition(bank scale.Bank, leaf int) float64 {
	if bank == scale.Bank0 {
		return c.leafBank0[leaf]
	}
	return c.leafBank1[leaf]
}
