// Package fluence is the dynamic aperture integration engine: given a
// finite stream of per-sample machine states (package logsnap or
// dicomrt), it reconstructs the 2-D photon fluence delivered across a
// sweep by projecting each instantaneous aperture (package aperture) onto
// a grid.Grid, weighted by the incremental MU between samples.
//
// What:
//
//   - Sample: the polymorphic per-state contract — gantry, collimator,
//     jaws, leaf positions, ΔMU, beam-hold, MLC model.
//   - Stream: a finite, random-access, restartable sequence of Sample.
//   - Options: grid shape, rasterisation mode, skip threshold, worker count.
//   - Integrator: the sweep driver.
//   - Result: the finished grid plus the options that produced it.
//
// Concurrency: Sweep partitions the grid's row range into
// Options.MaxParallelism contiguous bands dispatched via
// golang.org/x/sync/errgroup; each goroutine owns one band exclusively,
// so grid.Grid.Add calls never alias across goroutines and no lock is
// needed on the accumulator. MaxParallelism=1 runs inline without
// spawning a goroutine.
//
// A Grid, a Result, or an Options value does the same job a file-format
// writer (PTW .dat / TSV / DICOM RT-Image — all out of scope here) would
// need to read from: Result.Grid's Cols/Rows/Spacing/Origin/Extent and
// ForEach are exactly the accessors such a writer calls.
package fluence
