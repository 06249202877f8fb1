package scale

// iec61217Converter is the identity converter: IEC 61217 is the pivot
// frame, so both directions are pass-through. It still validates the
// axis name so unknown axes fail the same way every other converter does.
type iec61217Converter struct{}

func (iec61217Converter) Name() Scale { return IEC61217 }

func (iec61217Converter) ToIEC(a Axis, v float64) (float64, error) {
	if !knownAxis(a) {
		return 0, scaleErrorf(IEC61217, a, ErrUnknownAxis)
	}
	return v, nil
}

func (iec61217Converter) FromIEC(a Axis, v float64) (float64, error) {
	return iec61217Converter{}.ToIEC(a, v)
}

func (iec61217Converter) LeafToIEC(_ Bank, v float64) (float64, error) { return v, nil }

func (iec61217Converter) LeafFromIEC(_ Bank, v float64) (float64, error) { return v, nil }

func knownAxis(a Axis) bool {
	switch a {
	case AxisGantry, AxisCollimator, AxisCouchRtn, AxisCouchVrt, AxisCouchLat,
		AxisX1, AxisX2, AxisY1, AxisY2:
		return true
	default:
		return false
	}
}
