package dicomrt

import (
	"github.com/rtfluence/fluence"
	"github.com/rtfluence/fluence/mlc"
	"github.com/rtfluence/fluence/scale"
)

// Stream adapts an already-interpolated control-point sequence to
// fluence.Stream. ΔMU at index i is the meterset-weight delta since the
// previous control point (measured from 0 at i==0, so the first sample
// carries its own MetersetWeight) times the beam's total MU; a DICOM
// plan carries no beam-hold bit, so IsBeamHold is always false.
type Stream struct {
	points      []ControlPoint
	model       mlc.Model
	beamTotalMU float64
}

// NewStream builds a Stream over an interpolated control-point sequence
// (see Interpolate), the beam's MLC model, and its total planned MU.
func NewStream(points []ControlPoint, model mlc.Model, beamTotalMU float64) *Stream {
	return &Stream{points: points, model: model, beamTotalMU: beamTotalMU}
}

// Len returns the number of control points.
func (s *Stream) Len() int { return len(s.points) }

// Samples satisfies fluence.Source. A DICOM plan has only planned
// values, so the record type is irrelevant and the stream returns
// itself unchanged.
func (s *Stream) Samples(fluence.RecordType) (fluence.Stream, error) { return s, nil }

// At returns the sample at index i.
func (s *Stream) At(i int) (fluence.Sample, error) {
	if i < 0 || i >= len(s.points) {
		return nil, dicomrtErrorf(i, ErrIndexOutOfRange)
	}

	cp := s.points[i]
	if len(cp.LeafBank0) != s.model.LeafPairCount() || len(cp.LeafBank1) != s.model.LeafPairCount() {
		return nil, dicomrtErrorf(i, ErrLeafCountMismatch)
	}

	var deltaMeterset float64
	if i == 0 {
		deltaMeterset = cp.MetersetWeight
	} else {
		deltaMeterset = cp.MetersetWeight - s.points[i-1].MetersetWeight
	}

	return &cpSample{cp: cp, model: s.model, deltaMU: deltaMeterset * s.beamTotalMU}, nil
}

// cpSample wraps one interpolated ControlPoint to satisfy fluence.Sample.
type cpSample struct {
	cp      ControlPoint
	model   mlc.Model
	deltaMU float64
}

func (c *cpSample) MLCModel() mlc.Model { return c.model }
func (c *cpSample) X1() float64         { return c.cp.X1 }
func (c *cpSample) X2() float64         { return c.cp.X2 }
func (c *cpSample) Y1() float64         { return c.cp.Y1 }
func (c *cpSample) Y2() float64         { return c.cp.Y2 }
func (c *cpSample) Gantry() float64     { return c.cp.Gantry }
func (c *cpSample) Collimator() float64 { return c.cp.Collimator }
func (c *cpSample) DeltaMU() float64    { return c.deltaMU }
func (c *cpSample) IsBeamHold() bool    { return false }

func (c *cpSample) LeafPosition(bank scale.Bank, leaf int) float64 {
	if bank == scale.Bank0 {
		return c.cp.LeafBank0[leaf]
	}
	return c.cp.LeafBank1[leaf]
}
