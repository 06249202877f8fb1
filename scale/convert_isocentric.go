package scale

// machineIsocentricConverter implements the machine-native-isocentric
// scale: rotational axes share the machine-native (180-v) mapping
// (isocentricity doesn't change how rotation is read out), but couch
// vertical/lateral are already expressed relative to isocentre and so
// are identity, unlike machine-native's v-100 offset. Jaw sign
// conventions are unaffected by the isocentric/non-isocentric
// distinction and match machine-native.
type machineIsocentricConverter struct{}

func (machineIsocentricConverter) Name() Scale { return MachineIsocentric }

func (machineIsocentricConverter) ToIEC(a Axis, v float64) (float64, error) {
	switch a {
	case AxisGantry, AxisCollimator, AxisCouchRtn:
		return normalize360(180 - v), nil
	case AxisCouchVrt, AxisCouchLat:
		return v, nil
	case AxisX1, AxisY1:
		return -v, nil
	case AxisX2, AxisY2:
		return v, nil
	default:
		return 0, scaleErrorf(MachineIsocentric, a, ErrUnknownAxis)
	}
}

func (machineIsocentricConverter) FromIEC(a Axis, v float64) (float64, error) {
	switch a {
	case AxisGantry, AxisCollimator, AxisCouchRtn:
		return 180 - v, nil
	case AxisCouchVrt, AxisCouchLat:
		return v, nil
	case AxisX1, AxisY1:
		return -v, nil
	case AxisX2, AxisY2:
		return v, nil
	default:
		return 0, scaleErrorf(MachineIsocentric, a, ErrUnknownAxis)
	}
}

func (machineIsocentricConverter) LeafToIEC(bank Bank, v float64) (float64, error) {
	return leafSign(bank, v), nil
}

func (machineIsocentricConverter) LeafFromIEC(bank Bank, v float64) (float64, error) {
	return leafSign(bank, v), nil
}
