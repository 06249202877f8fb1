package mlc

// Millennium120 returns the Varian Millennium 120-leaf MLC model: 10
// outer pairs of 10mm, 40 central pairs of 5mm, 10 outer pairs of 10mm,
// spanning a symmetric ±200mm field. Panics only if the
// package's own constant widths are malformed, which a passing
// TestMillennium120_Invariant rules out — this constructor takes no
// arguments and cannot fail on caller input.
func Millennium120() Model {
	widths := make([]float64, 0, 60)
	appendRun(&widths, 10, 10.0)
	appendRun(&widths, 40, 5.0)
	appendRun(&widths, 10, 10.0)

	bounds := boundariesFromWidths(-200.0, widths)
	m, err := FromBoundaries(bounds)
	if err != nil {
		panic("mlc: Millennium120 built an invalid boundary table: " + err.Error())
	}
	return m
}

// HD120 returns the Varian High-Definition 120-leaf MLC model: 14 outer
// pairs of 5mm on each side, 32 central pairs of 2.5mm, spanning a
// symmetric ±110mm field.
func HD120() Model {
	widths := make([]float64, 0, 60)
	appendRun(&widths, 14, 5.0)
	appendRun(&widths, 32, 2.5)
	appendRun(&widths, 14, 5.0)

	bounds := boundariesFromWidths(-110.0, widths)
	m, err := FromBoundaries(bounds)
	if err != nil {
		panic("mlc: HD120 built an invalid boundary table: " + err.Error())
	}
	return m
}

func appendRun(widths *[]float64, count int, w float64) {
	for i := 0; i < count; i++ {
		*widths = append(*widths, w)
	}
}
