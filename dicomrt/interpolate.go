package dicomrt

import "math"

// Interpolate densifies cps — a beam's sparse, planned control-point
// sequence — into the finer sequence the integrator actually sweeps, by
// linearly interpolating every scalar and every leaf position between
// consecutive control points in round(1/cpDelta) equal steps per
// interval (steps of exactly cpDelta when it divides 1 evenly). The first
// control point opens the sequence; the final control point of the
// whole beam is always the last entry returned, exactly, regardless of
// how evenly cpDelta divides the [0,1] interval.
func Interpolate(cps []ControlPoint, cpDelta float64) ([]ControlPoint, error) {
	if len(cps) < 2 {
		return nil, ErrTooFewControlPoints
	}
	if cpDelta <= 0 || cpDelta > 1 {
		return nil, ErrInvalidCPDelta
	}

	n := len(cps[0].LeafBank0)
	for i, cp := range cps {
		if len(cp.LeafBank0) != n || len(cp.LeafBank1) != n {
			return nil, dicomrtErrorf(i, ErrLeafCountMismatch)
		}
	}

	steps := int(math.Round(1 / cpDelta))
	if steps < 1 {
		steps = 1
	}

	out := make([]ControlPoint, 0, (len(cps)-1)*steps+1)
	out = append(out, cps[0])

	for i := 0; i < len(cps)-1; i++ {
		a, b := cps[i], cps[i+1]
		for k := 1; k <= steps; k++ {
			if k == steps {
				out = append(out, b)
				continue
			}
			t := float64(k) / float64(steps)
			out = append(out, lerpControlPoint(a, b, t, n))
		}
	}
	return out, nil
}

func lerpControlPoint(a, b ControlPoint, t float64, n int) ControlPoint {
	cp := ControlPoint{
		Gantry:         lerp(a.Gantry, b.Gantry, t),
		Collimator:     lerp(a.Collimator, b.Collimator, t),
		X1:             lerp(a.X1, b.X1, t),
		X2:             lerp(a.X2, b.X2, t),
		Y1:             lerp(a.Y1, b.Y1, t),
		Y2:             lerp(a.Y2, b.Y2, t),
		MetersetWeight: lerp(a.MetersetWeight, b.MetersetWeight, t),
		LeafBank0:      make([]float64, n),
		LeafBank1:      make([]float64, n),
	}
	for leaf := 0; leaf < n; leaf++ {
		cp.LeafBank0[leaf] = lerp(a.LeafBank0[leaf], b.LeafBank0[leaf], t)
		cp.LeafBank1[leaf] = lerp(a.LeafBank1[leaf], b.LeafBank1[leaf], t)
	}
	return cp
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
