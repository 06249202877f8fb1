package fluence

import (
	"github.com/google/uuid"

	"github.com/rtfluence/fluence/geom"
	"github.com/rtfluence/fluence/grid"
)

// Result is returned when a sweep completes or is cancelled. It owns its
// Grid exclusively; no other component mutates it after Sweep returns.
type Result struct {
	// SweepID correlates this result with log lines a collaborator emits
	// about it; no two sweeps share one.
	SweepID uuid.UUID

	// Grid is the accumulated fluence. Read-only from here on.
	Grid *grid.Grid

	// Options is the configuration that produced Grid.
	Options Options

	// JawOutlines, if CaptureJawOutlines was requested, holds one rotated
	// jaw-rectangle polygon per sample (skipped samples included), for
	// debugging/visualisation.
	JawOutlines []geom.Polygon

	// Cancelled is true if the caller's context stopped the sweep early —
	// a distinguished result, not an error. Grid holds whatever was
	// accumulated before cancellation.
	Cancelled bool

	// Stats summarises how many samples were processed vs skipped.
	Stats SweepStats
}
