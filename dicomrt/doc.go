// Package dicomrt adapts a DICOM RT-Plan beam's sparse control-point
// sequence to the fluence.Stream/fluence.Sample contract. Control points
// carry planned (not measured) machine states and a cumulative meterset
// weight in [0,1]; Interpolate densifies them into the finer-grained
// sequence the integrator actually sweeps, and LoadBeamControlPoints
// extracts a beam's control points from a real RT-Plan file using
// github.com/suyashkumar/dicom. This is a narrow, purpose-built reader,
// not a general DICOM RT-Plan parser.
package dicomrt
