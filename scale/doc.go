// Package scale converts axis readings between the coordinate systems a
// Varian TrueBeam trajectory log and a DICOM RT-Plan can present them in,
// so that every downstream geometry package (aperture, geom, grid) sees
// only IEC 61217, the canonical internal frame.
//
// What:
//
//   - Axis: an enumerated axis identifier (gantry, collimator, couch,
//     jaws); MLC leaf positions are keyed by Bank instead.
//   - Converter: a capability exposing ToIEC/FromIEC for a single scale.
//   - Registry: a collection of named Converters plus the Convert and
//     Delta entry points the rest of the module calls.
//
// Why:
//
//   - A trajectory log column family can be recorded in machine-native,
//     machine-isocentric, or Varian-IEC values depending on the log
//     version and the axis; a DICOM plan is always IEC-ish but couch and
//     MLC bank sign conventions still need normalising. Centralising the
//     conversion keeps every other package's geometry code convention-free.
//
// Bank convention (fixed across the module): bank 0 is the "B-bank"
// (IEC positive side), bank 1 is the "A-bank" (sign-flipped relative to
// IEC). Every converter below, and every adapter in logsnap/dicomrt, uses
// this convention; nothing re-derives it.
//
// Errors:
//
//   - ErrUnsupportedScale: from/to scale not registered.
//   - ErrUnknownAxis: axis has no conversion rule for the requested scale.
package scale
