package aperture

import (
	"github.com/rtfluence/fluence/geom"
	"github.com/rtfluence/fluence/scale"
)

// mmToCM converts DICOM/leaf-model millimetres to the centimetre unit the
// rest of this module works in.
const mmToCM = 0.1

// Build computes the open-field polygon set for one machine state, in
// beam's eye view:
//
//  1. for each leaf pair, look up its centre/width (mm) and convert to a
//     cm y-band;
//  2. clip that band against the jaw Y aperture [Y1,Y2], discarding pairs
//     left with no band;
//  3. read the pair's two leaf positions (cm, IEC) and normalise so
//     x_lo <= x_hi;
//  4. clip [x_lo,x_hi] against the jaw X aperture [X1,X2], discarding
//     pairs left fully closed;
//  5. emit the surviving (x_lo,y_lo)-(x_hi,y_hi) rectangle as a 4-vertex
//     CCW polygon;
//  6. rotate every emitted rectangle, and the jaw rectangle itself, by
//     the sample's collimator angle.
//
// A sample whose MLC model reports a leaf pair count that its
// LeafPosition values disagree with is not handled here; the logsnap and
// dicomrt adapters reject such a sample before it reaches the integrator.
func Build(s Sample) (polys geom.PolygonSet, jawOutline geom.Polygon, err error) {
	x1, x2 := s.X1(), s.X2()
	y1, y2 := s.Y1(), s.Y2()
	model := s.MLCModel()
	collimator := s.Collimator()

	polys = make(geom.PolygonSet, 0, model.LeafPairCount())
	for i := 0; i < model.LeafPairCount(); i++ {
		centerMM, widthMM := model.LeafInfo(i)
		centerCM := centerMM * mmToCM
		halfWidthCM := widthMM * mmToCM / 2

		yLo, yHi := centerCM-halfWidthCM, centerCM+halfWidthCM
		if yLo < y1 {
			yLo = y1
		}
		if yHi > y2 {
			yHi = y2
		}
		if yLo >= yHi {
			continue // pair's band falls entirely outside the jaw Y aperture
		}

		xLo := s.LeafPosition(scale.Bank0, i)
		xHi := s.LeafPosition(scale.Bank1, i)
		if xLo > xHi {
			xLo, xHi = xHi, xLo
		}
		if xLo < x1 {
			xLo = x1
		}
		if xHi > x2 {
			xHi = x2
		}
		if xLo >= xHi {
			continue // leaf pair fully closed, or closed by the jaw
		}

		rect := geom.Rect{XLo: xLo, YLo: yLo, XHi: xHi, YHi: yHi}.ToPolygon()
		if collimator != 0 {
			rect = geom.Rotate(rect, collimator)
		}
		polys = append(polys, rect)
	}

	jawRect := geom.Rect{XLo: x1, YLo: y1, XHi: x2, YHi: y2}.ToPolygon()
	if collimator != 0 {
		jawRect = geom.Rotate(jawRect, collimator)
	}
	return polys, jawRect, nil
}
