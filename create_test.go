package fluence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rtfluence/fluence"
)

// testSource yields a different stream per record family, the way a
// trajectory-log source does.
type testSource struct {
	expected, actual testStream
}

func (s *testSource) Samples(rt fluence.RecordType) (fluence.Stream, error) {
	if rt == fluence.Expected {
		return s.expected, nil
	}
	return s.actual, nil
}

func TestCreateFluence_SelectsRecordType(t *testing.T) {
	src := &testSource{
		expected: testStream{openSample(t, 0, 0, 40)},
		actual:   testStream{openSample(t, 0, 0, 100)},
	}

	actualOpts, err := fluence.New(50, 50, 20, 20)
	require.NoError(t, err)
	expectedOpts, err := fluence.New(50, 50, 20, 20, fluence.WithRecordType(fluence.Expected))
	require.NoError(t, err)

	rActual, err := fluence.CreateFluence(context.Background(), src, actualOpts)
	require.NoError(t, err)
	rExpected, err := fluence.CreateFluence(context.Background(), src, expectedOpts)
	require.NoError(t, err)

	dx, dy := rActual.Grid.Spacing()
	require.InDelta(t, 100*100.0, rActual.Grid.Sum()*dx*dy, 1e-2)
	require.InDelta(t, 40*100.0, rExpected.Grid.Sum()*dx*dy, 1e-2)
}
