package fluence

import (
	"github.com/rtfluence/fluence/mlc"
	"github.com/rtfluence/fluence/scale"
)

// Sample is the polymorphic field-data-adapter contract: one machine
// state, already converted to IEC 61217 by its adapter. The
// integrator is polymorphic over this interface alone — it never knows
// whether a Sample came from a trajectory log or a DICOM control point.
type Sample interface {
	// MLCModel returns the MLC geometry this sample's leaf positions are
	// indexed against.
	MLCModel() mlc.Model

	// X1, X2, Y1, Y2 return the jaw positions in cm, IEC 61217, with
	// X1<=X2 and Y1<=Y2 already normalised by the adapter.
	X1() float64
	X2() float64
	Y1() float64
	Y2() float64

	// Gantry and Collimator return angles in degrees, IEC 61217.
	Gantry() float64
	Collimator() float64

	// LeafPosition returns the position, in cm IEC 61217, of the given
	// leaf on the given bank.
	LeafPosition(bank scale.Bank, leaf int) float64

	// DeltaMU returns the MU delivered since the previous sample (>= 0).
	DeltaMU() float64

	// IsBeamHold reports whether the beam was held during this sample.
	IsBeamHold() bool
}

// Stream is a finite, ordered, restartable sequence of Sample. Adapters
// (package logsnap, dicomrt) implement it directly over their own
// storage; the integrator never requires it to be materialised into a
// slice, though Sweep does so internally so parallel row-band workers
// share one contiguous, read-only buffer.
type Stream interface {
	// Len returns the number of samples, T.
	Len() int

	// At returns the sample at index i, 0 <= i < Len().
	At(i int) (Sample, error)
}

// RecordType selects whether a trajectory-log-backed Stream reports
// commanded ("Expected") or measured ("Actual") axis values. It has no
// effect on a DICOM-backed Stream, which carries only planned values.
type RecordType int

const (
	// Actual selects measured machine positions (the default).
	Actual RecordType = iota
	// Expected selects commanded machine positions.
	Expected
)

// SweepStats summarises a finished (or cancelled) sweep — the
// bookkeeping a collaborator logger can report without the core
// importing a logging library itself.
type SweepStats struct {
	SamplesTotal     int
	SamplesSkipped   int
	SamplesProcessed int
}
