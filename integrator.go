package fluence

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rtfluence/fluence/aperture"
	"github.com/rtfluence/fluence/geom"
	"github.com/rtfluence/fluence/grid"
	"github.com/rtfluence/fluence/scale"
)

// Integrator runs Sweep. It holds no state between calls — a zero value
// is ready to use, and one Integrator can run any number of concurrent
// sweeps safely since each Sweep call owns its own Grid.
type Integrator struct{}

// NewIntegrator returns a ready-to-use Integrator.
func NewIntegrator() *Integrator { return &Integrator{} }

// Sweep accumulates fluence for every sample src produces into a fresh
// Grid shaped by opts. Validation errors about any sample
// abort the whole sweep before any accumulation happens: no partial grid
// is ever returned alongside an error. Cancellation via ctx is different —
// it is checked between samples (never mid-sample) and, when it fires,
// Sweep returns a Result with Cancelled=true holding whatever was
// accumulated so far, not an error.
func (it *Integrator) Sweep(ctx context.Context, src Stream, opts Options) (*Result, error) {
	g, err := grid.New(opts.OriginX, opts.OriginY, opts.Width, opts.Height, opts.Cols, opts.Rows)
	if err != nil {
		return nil, fmt.Errorf("fluence: %w", err)
	}

	result := &Result{SweepID: uuid.New(), Grid: g, Options: opts}

	total := src.Len()
	result.Stats.SamplesTotal = total
	if total == 0 {
		return result, nil
	}

	samples := make([]Sample, total)
	for i := 0; i < total; i++ {
		s, err := src.At(i)
		if err != nil {
			return nil, sweepErrorf(i, err)
		}
		samples[i] = s
	}

	if err := validateSamples(samples); err != nil {
		return nil, err
	}

	active, skipped := selectActive(samples, opts)
	result.Stats.SamplesProcessed = len(active)
	result.Stats.SamplesSkipped = skipped

	if err := sweepActive(ctx, samples, active, g, opts); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		result.Cancelled = true
	}

	if opts.CaptureJawOutlines {
		result.JawOutlines = make([]geom.Polygon, 0, total)
		for _, s := range samples {
			_, jaw, err := aperture.Build(s)
			if err != nil {
				return nil, err
			}
			result.JawOutlines = append(result.JawOutlines, jaw)
		}
	}

	return result, nil
}

// validateSamples checks every sample before any accumulation begins, so
// a bad sample anywhere in the stream aborts cleanly rather than leaving
// a partially-filled grid. Every sample's MLC model must agree with the
// first sample's leaf-pair count — one sweep, one leaf geometry.
func validateSamples(samples []Sample) error {
	pairCount := samples[0].MLCModel().LeafPairCount()
	for i, s := range samples {
		for _, v := range []float64{s.X1(), s.X2(), s.Y1(), s.Y2(), s.Gantry(), s.Collimator()} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return sweepErrorf(i, ErrInvalidSample)
			}
		}
		if s.DeltaMU() < 0 {
			return sweepErrorf(i, ErrNegativeDeltaMU)
		}

		model := s.MLCModel()
		if model.LeafPairCount() != pairCount {
			return sweepErrorf(i, ErrMLCModelMismatch)
		}
		for leaf := 0; leaf < model.LeafPairCount(); leaf++ {
			a := s.LeafPosition(scale.Bank0, leaf)
			b := s.LeafPosition(scale.Bank1, leaf)
			if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
				return sweepErrorf(i, ErrInvalidSample)
			}
		}
	}
	return nil
}

// selectActive applies the beam-hold and ΔMU-threshold skip rules:
// beam-hold samples are dropped unless IncludeBeamHold is set; a
// sample with ΔMU no greater than MinDeltaMU is dropped too, except the
// stream's first sample, which is always processed regardless of its
// ΔMU so a sweep never starts from nothing.
func selectActive(samples []Sample, opts Options) (active []int, skipped int) {
	for i, s := range samples {
		if s.IsBeamHold() && !opts.IncludeBeamHold {
			skipped++
			continue
		}
		if i != 0 && s.DeltaMU() <= opts.MinDeltaMU {
			skipped++
			continue
		}
		active = append(active, i)
	}
	return active, skipped
}

// sweepActive dispatches accumulation over active sample indices across
// MaxParallelism row bands: each worker owns a disjoint,
// contiguous range of grid rows and processes every active sample,
// restricting its own writes to that range. A single worker runs inline
// with no goroutine at all.
func sweepActive(ctx context.Context, samples []Sample, active []int, g *grid.Grid, opts Options) error {
	rows := g.Rows()
	workers := opts.MaxParallelism
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		return sweepBand(ctx, samples, active, 0, rows, g, opts)
	}

	bandSize := (rows + workers - 1) / workers
	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		rLo := w * bandSize
		rHi := rLo + bandSize
		if rHi > rows {
			rHi = rows
		}
		if rLo >= rHi {
			continue
		}
		eg.Go(func() error {
			return sweepBand(egCtx, samples, active, rLo, rHi, g, opts)
		})
	}
	return eg.Wait()
}

// sweepBand accumulates every active sample's contribution into grid
// rows [rowLo, rowHi). It checks ctx between samples only — cancellation
// never interrupts a sample partway through.
func sweepBand(ctx context.Context, samples []Sample, active []int, rowLo, rowHi int, g *grid.Grid, opts Options) error {
	dx, dy := g.Spacing()
	cellArea := dx * dy

	for _, idx := range active {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		s := samples[idx]
		polys, _, err := aperture.Build(s)
		if err != nil {
			return sweepErrorf(idx, err)
		}
		if len(polys) == 0 {
			continue
		}

		rLo, rHi, cLo, cHi := g.ClampCellRange(polys.BoundingBox())
		if rLo < rowLo {
			rLo = rowLo
		}
		if rHi > rowHi {
			rHi = rowHi
		}
		if rLo >= rHi || cLo >= cHi {
			continue
		}

		deltaMU := s.DeltaMU()
		if opts.UseApproximateFluence {
			accumulateApprox(g, polys, rLo, rHi, cLo, cHi, deltaMU)
		} else {
			accumulateExact(g, polys, rLo, rHi, cLo, cHi, deltaMU, cellArea)
		}
	}
	return nil
}

// accumulateExact adds, to every cell in [rLo,rHi) x [cLo,cHi), the
// fraction of deltaMU proportional to how much of that cell each
// aperture polygon exactly covers.
func accumulateExact(g *grid.Grid, polys geom.PolygonSet, rLo, rHi, cLo, cHi int, deltaMU, cellArea float64) {
	for r := rLo; r < rHi; r++ {
		for c := cLo; c < cHi; c++ {
			cell := g.BoundsOfCell(r, c).ToPolygon()
			var area float64
			for _, p := range polys {
				if clipped := geom.ClipConvex(cell, p); clipped != nil {
					area += geom.Area(clipped)
				}
			}
			if area > 0 {
				g.Add(r, c, area*deltaMU/cellArea)
			}
		}
	}
}

// accumulateApprox adds the full deltaMU to every cell in [rLo,rHi) x
// [cLo,cHi) whose centre falls inside any aperture polygon. No area
// weighting, so it agrees with the exact mode whenever a cell is either
// fully inside or fully outside every polygon, and only approximately
// at a polygon's boundary cells.
func accumulateApprox(g *grid.Grid, polys geom.PolygonSet, rLo, rHi, cLo, cHi int, deltaMU float64) {
	for r := rLo; r < rHi; r++ {
		for c := cLo; c < cHi; c++ {
			cell := g.BoundsOfCell(r, c)
			centre := geom.Point{X: (cell.XLo + cell.XHi) / 2, Y: (cell.YLo + cell.YHi) / 2}
			for _, p := range polys {
				if geom.Contains(p, centre) {
					g.Add(r, c, deltaMU)
					break
				}
			}
		}
	}
}
