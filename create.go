package fluence

import "context"

// Source is a field-data source that can yield its sample stream for a
// chosen RecordType: a trajectory log (whole or sub-beam subrange) hands
// back different streams for Expected vs Actual, while a DICOM plan beam
// ignores the record type, carrying only planned values.
type Source interface {
	Samples(rt RecordType) (Stream, error)
}

// CreateFluence builds the fluence grid for source under opts: it asks
// source for the record stream named by opts.RecordType and runs a full
// sweep over it. Equivalent to constructing the stream by hand and
// calling Integrator.Sweep.
func CreateFluence(ctx context.Context, source Source, opts Options) (*Result, error) {
	src, err := source.Samples(opts.RecordType)
	if err != nil {
		return nil, err
	}
	return NewIntegrator().Sweep(ctx, src, opts)
}
