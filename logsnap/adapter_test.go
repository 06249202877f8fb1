package logsnap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rtfluence/fluence"
	"github.com/rtfluence/fluence/logsnap"
	"github.com/rtfluence/fluence/mlc"
	"github.com/rtfluence/fluence/scale"
)

func model(t *testing.T) mlc.Model {
	t.Helper()
	m, err := mlc.FromBoundaries([]float64{-100, 100})
	require.NoError(t, err)
	return m
}

func TestStream_ConvertsNativeToIEC(t *testing.T) {
	snaps := []logsnap.Snapshot{
		{
			Actual: logsnap.AxisValues{
				Gantry: 180, Collimator: 0,
				X1: 5, X2: 5, Y1: 5, Y2: 5, // machine-native sign-flips X1/Y1 only
				LeafBank0: []float64{1}, LeafBank1: []float64{2},
			},
			MU: 10,
		},
	}
	stream := logsnap.NewStream(snaps, model(t), scale.NewDefaultRegistry(), scale.MachineNative, fluence.Actual)
	require.Equal(t, 1, stream.Len())

	s, err := stream.At(0)
	require.NoError(t, err)
	require.InDelta(t, 0, s.Gantry(), 1e-9) // IEC = (180-180) mod 360 = 0
	require.InDelta(t, -5, s.X1(), 1e-9) // X1 sign-flipped by the native converter
	require.InDelta(t, 5, s.X2(), 1e-9)  // X2 passes through unchanged
	require.InDelta(t, 10, s.DeltaMU(), 1e-9) // first sample: deltaMU = MU
}

func TestStream_RecordTypeSelectsFamily(t *testing.T) {
	snaps := []logsnap.Snapshot{
		{
			Expected: logsnap.AxisValues{Gantry: 90, X1: -1, X2: 1, Y1: -1, Y2: 1, LeafBank0: []float64{0}, LeafBank1: []float64{0}},
			Actual:   logsnap.AxisValues{Gantry: 270, X1: -1, X2: 1, Y1: -1, Y2: 1, LeafBank0: []float64{0}, LeafBank1: []float64{0}},
		},
	}
	reg := scale.NewDefaultRegistry()

	expStream := logsnap.NewStream(snaps, model(t), reg, scale.IEC61217, fluence.Expected)
	expSample, err := expStream.At(0)
	require.NoError(t, err)
	require.InDelta(t, 90, expSample.Gantry(), 1e-9)

	actStream := logsnap.NewStream(snaps, model(t), reg, scale.IEC61217, fluence.Actual)
	actSample, err := actStream.At(0)
	require.NoError(t, err)
	require.InDelta(t, 270, actSample.Gantry(), 1e-9)
}

func TestStream_DeltaMU_AccumulatesAcrossSnapshots(t *testing.T) {
	av := logsnap.AxisValues{LeafBank0: []float64{0}, LeafBank1: []float64{0}}
	snaps := []logsnap.Snapshot{
		{Actual: av, MU: 5},
		{Actual: av, MU: 12},
	}
	stream := logsnap.NewStream(snaps, model(t), scale.NewDefaultRegistry(), scale.IEC61217, fluence.Actual)

	first, err := stream.At(0)
	require.NoError(t, err)
	require.InDelta(t, 5, first.DeltaMU(), 1e-9)

	second, err := stream.At(1)
	require.NoError(t, err)
	require.InDelta(t, 7, second.DeltaMU(), 1e-9)
}

func TestStream_IndexOutOfRange(t *testing.T) {
	stream := logsnap.NewStream(nil, model(t), scale.NewDefaultRegistry(), scale.IEC61217, fluence.Actual)
	_, err := stream.At(0)
	require.ErrorIs(t, err, logsnap.ErrIndexOutOfRange)
}

func TestSource_SubBeamAndSamples(t *testing.T) {
	av := logsnap.AxisValues{LeafBank0: []float64{0}, LeafBank1: []float64{0}}
	snaps := []logsnap.Snapshot{
		{Actual: av, Expected: av, MU: 1},
		{Actual: av, Expected: av, MU: 2},
		{Actual: av, Expected: av, MU: 3},
		{Actual: av, Expected: av, MU: 4},
	}
	src := logsnap.NewSource(snaps, model(t), scale.NewDefaultRegistry(), scale.IEC61217)

	whole, err := src.Samples(fluence.Actual)
	require.NoError(t, err)
	require.Equal(t, 4, whole.Len())

	sub, err := src.SubBeam(1, 3).Samples(fluence.Actual)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())

	first, err := sub.At(0)
	require.NoError(t, err)
	require.InDelta(t, 1, first.DeltaMU(), 1e-9) // baselined against the snapshot before the subrange (MU=1)

	clamped := src.SubBeam(-5, 99)
	all, err := clamped.Samples(fluence.Expected)
	require.NoError(t, err)
	require.Equal(t, 4, all.Len())
}
