package dicomrt

// ControlPoint is one planned machine state from an RT-Plan beam, in cm
// and degrees, IEC 61217 (DICOM RT-Plan angles and jaw/leaf positions
// are defined in the IEC frame, so no scale conversion is needed here —
// unlike the logsnap adapter's machine-native log values).
type ControlPoint struct {
	Gantry         float64
	Collimator     float64
	X1, X2         float64
	Y1, Y2         float64
	LeafBank0      []float64
	LeafBank1      []float64
	MetersetWeight float64 // cumulative, in [0,1]
}
