package scale

import "math"

// machineNativeConverter implements the machine-native scale rules:
//
//   - Rotational axes: IEC = ((180 − v) mod 360), normalised to [0,360).
//   - Couch vertical/lateral: IEC = −(100 − v) = v − 100.
//   - X1, Y1: sign-flipped relative to IEC.
//   - X2, Y2: identity.
type machineNativeConverter struct{}

func (machineNativeConverter) Name() Scale { return MachineNative }

func (machineNativeConverter) ToIEC(a Axis, v float64) (float64, error) {
	switch a {
	case AxisGantry, AxisCollimator, AxisCouchRtn:
		return normalize360(180 - v), nil
	case AxisCouchVrt, AxisCouchLat:
		return v - 100, nil
	case AxisX1, AxisY1:
		return -v, nil
	case AxisX2, AxisY2:
		return v, nil
	default:
		return 0, scaleErrorf(MachineNative, a, ErrUnknownAxis)
	}
}

func (machineNativeConverter) FromIEC(a Axis, v float64) (float64, error) {
	switch a {
	case AxisGantry, AxisCollimator, AxisCouchRtn:
		// (180-v) mod 360 is periodic, so its inverse is only defined up
		// to a multiple of 360; we return the un-normalised branch
		// (180-v) so that values already in a device's natural range
		// round-trip exactly, and leave wraparound-equivalent angles
		// (e.g. -180 vs +180) to be compared modulo 360 by callers.
		return 180 - v, nil
	case AxisCouchVrt, AxisCouchLat:
		return v + 100, nil
	case AxisX1, AxisY1:
		return -v, nil
	case AxisX2, AxisY2:
		return v, nil
	default:
		return 0, scaleErrorf(MachineNative, a, ErrUnknownAxis)
	}
}

// LeafToIEC: bank 0 (B-bank) is identity; bank 1 (A-bank) is sign-flipped.
func (machineNativeConverter) LeafToIEC(bank Bank, v float64) (float64, error) {
	return leafSign(bank, v), nil
}

func (machineNativeConverter) LeafFromIEC(bank Bank, v float64) (float64, error) {
	return leafSign(bank, v), nil
}

func leafSign(bank Bank, v float64) float64 {
	if bank == Bank1 {
		return -v
	}
	return v
}

// normalize360 folds v into [0, 360).
func normalize360(v float64) float64 {
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v
}
