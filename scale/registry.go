package scale

// Registry holds the set of registered Converters and is the only entry
// point the rest of the module uses for axis conversion. It carries no
// global state — callers construct one explicitly (NewDefaultRegistry or
// NewRegistry) and pass it down, so tests can inject alternates.
type Registry struct {
	converters map[Scale]Converter
}

// NewRegistry returns an empty Registry. Use Register to populate it.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[Scale]Converter)}
}

// NewDefaultRegistry returns a Registry pre-populated with the four
// recognised scales: machine-native, machine-native-isocentric,
// varian-iec, and iec-61217.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(machineNativeConverter{})
	r.Register(machineIsocentricConverter{})
	r.Register(varianIECConverter{})
	r.Register(iec61217Converter{})
	return r
}

// Register adds or replaces the Converter for c.Name().
func (r *Registry) Register(c Converter) {
	r.converters[c.Name()] = c
}

// Convert translates v for axis a from scale "from" to scale "to",
// pivoting through IEC 61217. Converting IEC61217 to itself is the
// identity for every recognised axis; an unrecognised axis still fails
// with ErrUnknownAxis.
// Fails with ErrUnsupportedScale if either scale is not registered.
func (r *Registry) Convert(from, to Scale, a Axis, v float64) (float64, error) {
	iec, err := r.toIEC(from, a, v)
	if err != nil {
		return 0, err
	}
	return r.fromIEC(to, a, iec)
}

// ConvertLeaf is the bank-aware analogue of Convert for MLC leaf positions.
func (r *Registry) ConvertLeaf(from, to Scale, bank Bank, v float64) (float64, error) {
	fromConv, ok := r.converters[from]
	if !ok {
		return 0, scaleErrorf(from, "<leaf>", ErrUnsupportedScale)
	}
	toConv, ok := r.converters[to]
	if !ok {
		return 0, scaleErrorf(to, "<leaf>", ErrUnsupportedScale)
	}
	iec, err := fromConv.LeafToIEC(bank, v)
	if err != nil {
		return 0, err
	}
	return toConv.LeafFromIEC(bank, iec)
}

// Delta converts both v1 and v2 (given in scale s for axis a) to IEC and
// returns v2's IEC value minus v1's. For rotational axes the result is
// normalised into (−180, +180], so Delta(IEC61217, AxisGantry, 359, 1) ==
// 2, not -358.
func (r *Registry) Delta(s Scale, a Axis, v1, v2 float64) (float64, error) {
	iec1, err := r.toIEC(s, a, v1)
	if err != nil {
		return 0, err
	}
	iec2, err := r.toIEC(s, a, v2)
	if err != nil {
		return 0, err
	}

	d := iec2 - iec1
	if rotational(a) {
		d = wrapDelta(d)
	}
	return d, nil
}

func (r *Registry) toIEC(s Scale, a Axis, v float64) (float64, error) {
	c, ok := r.converters[s]
	if !ok {
		return 0, scaleErrorf(s, a, ErrUnsupportedScale)
	}
	return c.ToIEC(a, v)
}

func (r *Registry) fromIEC(s Scale, a Axis, v float64) (float64, error) {
	c, ok := r.converters[s]
	if !ok {
		return 0, scaleErrorf(s, a, ErrUnsupportedScale)
	}
	return c.FromIEC(a, v)
}

// wrapDelta normalises a rotational difference into (−180, +180].
func wrapDelta(d float64) float64 {
	for d <= -180 {
		d += 360
	}
	for d > 180 {
		d -= 360
	}
	return d
}
