package dicomrt

import (
	"strconv"

	godicom "github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/rtfluence/fluence/mlc"
)

// LoadBeamControlPoints reads one beam's control-point sequence and leaf
// geometry from an RT-Plan file at path, returning its raw (un-
// interpolated) control points — pass them to Interpolate before
// building a Stream — the beam's MLC model (built via
// mlc.FromBoundaries from the beam's leaf-boundary element), and the
// beam's total planned MU. It reads only the Beam Sequence, Control
// Point Sequence, and Fraction Group Sequence elements this package
// needs; it is not a general RT-Plan reader.
func LoadBeamControlPoints(path string, beamNumber int) (points []ControlPoint, model mlc.Model, beamTotalMU float64, err error) {
	ds, err := godicom.ParseFile(path, nil)
	if err != nil {
		return nil, nil, 0, err
	}

	beamItem, err := findBeamItem(&ds, beamNumber)
	if err != nil {
		return nil, nil, 0, err
	}

	model, err = boundariesModel(beamItem)
	if err != nil {
		return nil, nil, 0, err
	}

	cpElem, err := findElementIn(beamItem, tag.ControlPointSequence)
	if err != nil {
		return nil, nil, 0, err
	}
	cpItems, err := sequenceItems(cpElem)
	if err != nil {
		return nil, nil, 0, err
	}

	points = make([]ControlPoint, 0, len(cpItems))
	var lastCP ControlPoint
	for i, item := range cpItems {
		cp, err := controlPointFromItem(item, lastCP)
		if err != nil {
			return nil, nil, 0, dicomrtErrorf(i, err)
		}
		points = append(points, cp)
		lastCP = cp
	}

	beamTotalMU, err = beamMeterset(&ds, beamNumber)
	if err != nil {
		return nil, nil, 0, err
	}

	return points, model, beamTotalMU, nil
}

func findBeamItem(ds *godicom.Dataset, beamNumber int) (*godicom.SequenceItemValue, error) {
	elem, err := ds.FindElementByTag(tag.BeamSequence)
	if err != nil {
		return nil, ErrMissingElement
	}
	items, err := sequenceItems(elem)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		numElem, err := findElementIn(item, tag.BeamNumber)
		if err != nil {
			continue
		}
		n, err := elementInt(numElem)
		if err != nil {
			continue
		}
		if n == beamNumber {
			return item, nil
		}
	}
	return nil, ErrBeamNotFound
}

// boundariesModel builds an mlc.Model from the beam's MLCX leaf-boundary
// element, present once per beam (not per control point).
func boundariesModel(beamItem *godicom.SequenceItemValue) (mlc.Model, error) {
	devElem, err := findElementIn(beamItem, tag.BeamLimitingDeviceSequence)
	if err != nil {
		return nil, err
	}
	devItems, err := sequenceItems(devElem)
	if err != nil {
		return nil, err
	}
	for _, dev := range devItems {
		typeElem, err := findElementIn(dev, tag.RTBeamLimitingDeviceType)
		if err != nil {
			continue
		}
		if elementString(typeElem) != "MLCX" {
			continue
		}
		boundsElem, err := findElementIn(dev, tag.LeafPositionBoundaries)
		if err != nil {
			return nil, err
		}
		bounds, err := elementFloats(boundsElem)
		if err != nil {
			return nil, err
		}
		return mlc.FromBoundaries(bounds)
	}
	return nil, ErrMissingElement
}

// controlPointFromItem reads one <ControlPoint> item. Gantry, collimator
// and jaw elements are only required to be present on the first control
// point of a beam (DICOM's "carry-forward" convention); absent elements
// on later control points fall back to the previous point's value.
func controlPointFromItem(item *godicom.SequenceItemValue, prev ControlPoint) (ControlPoint, error) {
	cp := prev

	if e, err := findElementIn(item, tag.GantryAngle); err == nil {
		if v, err := elementFloat(e); err == nil {
			cp.Gantry = v
		}
	}
	if e, err := findElementIn(item, tag.BeamLimitingDeviceAngle); err == nil {
		if v, err := elementFloat(e); err == nil {
			cp.Collimator = v
		}
	}
	if e, err := findElementIn(item, tag.CumulativeMetersetWeight); err == nil {
		v, err := elementFloat(e)
		if err != nil {
			return cp, err
		}
		cp.MetersetWeight = v
	}

	if posElem, err := findElementIn(item, tag.BeamLimitingDevicePositionSequence); err == nil {
		posItems, err := sequenceItems(posElem)
		if err != nil {
			return cp, err
		}
		for _, pos := range posItems {
			typeElem, err := findElementIn(pos, tag.RTBeamLimitingDeviceType)
			if err != nil {
				continue
			}
			positionsElem, err := findElementIn(pos, tag.LeafJawPositions)
			if err != nil {
				continue
			}
			vals, err := elementFloats(positionsElem)
			if err != nil {
				return cp, err
			}
			for k := range vals {
				vals[k] /= 10 // DICOM positions are mm; ControlPoint holds cm
			}
			switch elementString(typeElem) {
			case "ASYMX", "X":
				if len(vals) == 2 {
					cp.X1, cp.X2 = vals[0], vals[1]
				}
			case "ASYMY", "Y":
				if len(vals) == 2 {
					cp.Y1, cp.Y2 = vals[0], vals[1]
				}
			case "MLCX":
				half := len(vals) / 2
				cp.LeafBank0 = vals[:half]
				cp.LeafBank1 = vals[half:]
			}
		}
	}

	return cp, nil
}

func beamMeterset(ds *godicom.Dataset, beamNumber int) (float64, error) {
	fgElem, err := ds.FindElementByTag(tag.FractionGroupSequence)
	if err != nil {
		return 0, ErrMissingElement
	}
	fgItems, err := sequenceItems(fgElem)
	if err != nil {
		return 0, err
	}
	for _, fg := range fgItems {
		refElem, err := findElementIn(fg, tag.ReferencedBeamSequence)
		if err != nil {
			continue
		}
		refItems, err := sequenceItems(refElem)
		if err != nil {
			continue
		}
		for _, ref := range refItems {
			numElem, err := findElementIn(ref, tag.ReferencedBeamNumber)
			if err != nil {
				continue
			}
			n, err := elementInt(numElem)
			if err != nil || n != beamNumber {
				continue
			}
			musElem, err := findElementIn(ref, tag.BeamMeterset)
			if err != nil {
				return 0, err
			}
			return elementFloat(musElem)
		}
	}
	return 0, ErrBeamNotFound
}

func findElementIn(item *godicom.SequenceItemValue, t tag.Tag) (*godicom.Element, error) {
	elems, ok := item.GetValue().([]*godicom.Element)
	if !ok {
		return nil, ErrMissingElement
	}
	for _, e := range elems {
		if e.Tag == t {
			return e, nil
		}
	}
	return nil, ErrMissingElement
}

func sequenceItems(elem *godicom.Element) ([]*godicom.SequenceItemValue, error) {
	items, ok := elem.Value.GetValue().([]*godicom.SequenceItemValue)
	if !ok {
		return nil, ErrMissingElement
	}
	return items, nil
}

func elementString(elem *godicom.Element) string {
	if ss, ok := elem.Value.GetValue().([]string); ok && len(ss) > 0 {
		return ss[0]
	}
	return ""
}

func elementFloat(elem *godicom.Element) (float64, error) {
	vs, err := elementFloats(elem)
	if err != nil || len(vs) == 0 {
		return 0, ErrMissingElement
	}
	return vs[0], nil
}

func elementFloats(elem *godicom.Element) ([]float64, error) {
	ss, ok := elem.Value.GetValue().([]string)
	if !ok {
		return nil, ErrMissingElement
	}
	out := make([]float64, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func elementInt(elem *godicom.Element) (int, error) {
	v, err := elementFloat(elem)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
