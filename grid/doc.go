// Package grid provides the rectangular, axis-aligned fluence
// accumulator: a row-major float64 buffer with explicit physical bounds
// in BEV centimetres, regular spacing, and bounds-checked accessors.
//
// What:
//
//   - Grid: bounds rectangle, column/row counts, row-major buffer.
//   - Get/Set: point accessors.
//   - Add: accumulation primitive, safe when callers own disjoint row
//     bands (see fluence.Integrator).
//   - BoundsOfCell/CellOfPoint: geometry <-> index conversions.
//
// Complexity: every method below is O(1); a Grid of C columns and R rows
// uses O(C*R) memory, allocated once at construction and never resized.
package grid
