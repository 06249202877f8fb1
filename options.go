package fluence

import (
	"errors"
	"runtime"
)

// Documented defaults for every optional setting.
const (
	DefaultUseApproximateFluence = false
	DefaultMinDeltaMU            = 0.0
	DefaultIncludeBeamHold       = false
	DefaultRecordType            = Actual
)

// ErrInvalidGridShape indicates non-positive Cols/Rows/Width/Height.
var ErrInvalidGridShape = errors.New("fluence: cols, rows, width and height must be > 0")

// Option mutates an Options value during construction. Every WithX
// constructor below validates its own argument and panics on a
// nonsensical value (a programmer error), never on a merely unusual one.
type Option func(*Options)

// Options is the immutable-after-construction configuration record for
// a sweep. Build one with New, then zero or more Option values.
type Options struct {
	Cols, Rows            int
	Width, Height         float64
	OriginX, OriginY      float64 // lower-left corner of the grid, cm
	UseApproximateFluence bool
	MinDeltaMU            float64
	MaxParallelism        int
	RecordType            RecordType
	IncludeBeamHold       bool
	CaptureJawOutlines    bool
}

// New builds an Options with required grid shape (Cols, Rows, Width,
// Height) and the documented defaults for everything else: the grid is
// centred on the BEV origin, exact (non-approximate) rasterisation,
// MinDeltaMU=0, MaxParallelism=runtime.NumCPU(), RecordType=Actual,
// beam-hold samples excluded.
func New(cols, rows int, width, height float64, opts ...Option) (Options, error) {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return Options{}, ErrInvalidGridShape
	}

	o := Options{
		Cols:                  cols,
		Rows:                  rows,
		Width:                 width,
		Height:                height,
		OriginX:               -width / 2,
		OriginY:               -height / 2,
		UseApproximateFluence: DefaultUseApproximateFluence,
		MinDeltaMU:            DefaultMinDeltaMU,
		MaxParallelism:        runtime.NumCPU(),
		RecordType:            DefaultRecordType,
		IncludeBeamHold:       DefaultIncludeBeamHold,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o, nil
}

// WithApproximateFluence switches Sweep to centre-point rasterisation,
// for coarse visualisation only.
func WithApproximateFluence() Option {
	return func(o *Options) { o.UseApproximateFluence = true }
}

// WithMinDeltaMU sets the ΔMU threshold at or below which a (non-first)
// sample is skipped. Panics if v < 0.
func WithMinDeltaMU(v float64) Option {
	if v < 0 {
		panic("fluence: WithMinDeltaMU requires v >= 0")
	}
	return func(o *Options) { o.MinDeltaMU = v }
}

// WithMaxParallelism sets the worker-band count. Panics if n <= 0;
// n=1 runs the sweep inline with no goroutine spawned.
func WithMaxParallelism(n int) Option {
	if n <= 0 {
		panic("fluence: WithMaxParallelism requires n > 0")
	}
	return func(o *Options) { o.MaxParallelism = n }
}

// WithRecordType selects commanded vs measured axis values for a
// trajectory-log-backed Stream; ignored by a DICOM-backed Stream.
func WithRecordType(rt RecordType) Option {
	return func(o *Options) { o.RecordType = rt }
}

// WithIncludeBeamHold disables the default skip-on-beam-hold behaviour.
func WithIncludeBeamHold() Option {
	return func(o *Options) { o.IncludeBeamHold = true }
}

// WithOrigin overrides the default BEV-centred grid placement, moving the
// lower-left corner to (x0, y0).
func WithOrigin(x0, y0 float64) Option {
	return func(o *Options) { o.OriginX, o.OriginY = x0, y0 }
}

// WithCaptureJawOutlines asks Sweep to record one rotated jaw-rectangle
// polygon per sample (skipped samples included) into Result.JawOutlines,
// for debugging and visualisation. Off by default: it allocates
// O(samples) extra memory.
func WithCaptureJawOutlines() Option {
	return func(o *Options) { o.CaptureJawOutlines = true }
}
